package wcagref_test

import "github.com/fwojciec/wcagref"

// newTestDataset returns a small dataset shaped like the bundled one:
// 2.0 lacks 1.3.4 and uses one-page technique groups, 2.1 uses group IDs.
func newTestDataset() *wcagref.Dataset {
	wcag20 := &wcagref.Partition{
		Version: wcagref.Version20,
		URL:     "https://www.w3.org/TR/WCAG20/",
		Principles: map[int]*wcagref.Principle{
			1: {
				ID:   "perceivable",
				Text: "Principle 1: Perceivable",
				Guidelines: map[int]*wcagref.Guideline{
					3: {
						ID:                "content-structure-separation",
						Text:              "Guideline 1.3 Adaptable",
						DetailedReference: "http://www.w3.org/TR/UNDERSTANDING-WCAG20/content-structure-separation.html",
						SuccessCriteria: map[int]*wcagref.SuccessCriterion{
							1: {
								ID:                "content-structure-separation-programmatic",
								Handle:            "1.3.1 Info and Relationships",
								QuickReference:    "http://www.w3.org/WAI/WCAG20/quickref/#qr-content-structure-separation-programmatic",
								DetailedReference: "http://www.w3.org/TR/UNDERSTANDING-WCAG20/content-structure-separation-programmatic.html",
								Level:             wcagref.LevelA,
							},
						},
					},
				},
			},
		},
		Techniques: wcagref.TechniqueIndex{
			URL: "https://www.w3.org/TR/WCAG20-TECHS/",
			Groups: map[string]*wcagref.TechniqueGroup{
				"G": {
					Text:    "General Techniques",
					OnePage: "general.html",
					Techniques: map[string]*wcagref.Technique{
						"G57": {Text: "G57: Ordering the content in a meaningful sequence"},
					},
				},
				"SCR": {
					Text:    "Client-side Scripting Techniques",
					OnePage: "client-side-script.html",
					Techniques: map[string]*wcagref.Technique{
						"SCR27": {Text: "SCR27: Reordering page sections using the Document Object Model"},
					},
				},
			},
		},
	}

	wcag21 := &wcagref.Partition{
		Version: wcagref.Version21,
		URL:     "https://www.w3.org/TR/WCAG21/",
		Principles: map[int]*wcagref.Principle{
			1: {
				ID:   "perceivable",
				Text: "1. Perceivable",
				Guidelines: map[int]*wcagref.Guideline{
					3: {
						ID:   "adaptable",
						Text: "Guideline 1.3 Adaptable",
						SuccessCriteria: map[int]*wcagref.SuccessCriterion{
							4: {
								ID:                "orientation",
								Handle:            "1.3.4 Orientation",
								QuickReference:    "https://www.w3.org/WAI/WCAG21/quickref/#orientation",
								DetailedReference: "https://www.w3.org/WAI/WCAG21/Understanding/orientation.html",
								Level:             wcagref.LevelAA,
							},
						},
					},
				},
			},
			2: {
				ID:   "operable",
				Text: "2. Operable",
				Guidelines: map[int]*wcagref.Guideline{
					1: {
						ID:   "keyboard-accessible",
						Text: "Guideline 2.1 Keyboard Accessible",
						SuccessCriteria: map[int]*wcagref.SuccessCriterion{
							1: {
								ID:                "keyboard",
								Handle:            "2.1.1 Keyboard",
								QuickReference:    "https://www.w3.org/WAI/WCAG21/quickref/#keyboard",
								DetailedReference: "https://www.w3.org/WAI/WCAG21/Understanding/keyboard.html",
								Level:             wcagref.LevelA,
							},
							3: {
								ID:                "keyboard-no-exception",
								Handle:            "2.1.3 Keyboard (No Exception)",
								QuickReference:    "https://www.w3.org/WAI/WCAG21/quickref/#keyboard-no-exception",
								DetailedReference: "https://www.w3.org/WAI/WCAG21/Understanding/keyboard-no-exception.html",
								Level:             wcagref.LevelAAA,
							},
						},
					},
				},
			},
		},
		Techniques: wcagref.TechniqueIndex{
			URL: "https://www.w3.org/WAI/WCAG21/Techniques/",
			Groups: map[string]*wcagref.TechniqueGroup{
				"G": {
					ID:   "general",
					Text: "General Techniques",
					Techniques: map[string]*wcagref.Technique{
						"G57":  {Text: "G57: Ordering the content in a meaningful sequence"},
						"G10":  {Text: "G10: Creating components using a technology that has an accessibility API"},
						"G202": {Text: "G202: Ensuring keyboard control for all functionality"},
					},
				},
				"ARIA": {
					ID:   "aria",
					Text: "ARIA Techniques",
					Techniques: map[string]*wcagref.Technique{
						"ARIA12": {Text: "ARIA12: Using role=heading to identify headings"},
					},
				},
			},
		},
	}

	return wcagref.NewDataset(wcag20, wcag21)
}
