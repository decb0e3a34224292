package goquery_test

import (
	"testing"

	"github.com/fwojciec/wcagref"
	"github.com/fwojciec/wcagref/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const recommendation20HTML = `<!DOCTYPE html>
<html>
<body>
<div class="div2">
	<h2 class="principle"><a id="perceivable"></a>Principle 1: Perceivable - Information and user interface
		components must be presentable to users in ways they can perceive.</h2>
	<div class="div3">
		<div class="guideline">
			<h3><a id="text-equiv"></a>Guideline 1.1 Text Alternatives: Provide text alternatives for any non-text content.</h3>
			<p><a href="http://www.w3.org/TR/UNDERSTANDING-WCAG20/text-equiv.html">Understanding Guideline 1.1</a></p>
		</div>
		<ul>
			<li class="sc" id="text-equiv-all">
				<p class="sctxt"><strong class="sc-handle">1.1.1 Non-text Content:</strong>
				All non-text content that is presented to the user has a text alternative. (Level A)</p>
				<a href="http://www.w3.org/WAI/WCAG20/quickref/#qr-text-equiv-all">How to Meet 1.1.1</a>
				<a href="http://www.w3.org/TR/UNDERSTANDING-WCAG20/text-equiv-all.html">Understanding 1.1.1</a>
			</li>
		</ul>
	</div>
	<div class="div3">
		<div class="guideline">
			<h3><a id="visual-audio-contrast"></a>Guideline 1.4 Distinguishable: Make it easier for users to see and hear content.</h3>
			<p><a href="http://www.w3.org/TR/UNDERSTANDING-WCAG20/visual-audio-contrast.html">Understanding Guideline 1.4</a></p>
		</div>
		<ul>
			<li class="sc" id="visual-audio-contrast-contrast">
				<p class="sctxt"><strong class="sc-handle">1.4.3 Contrast (Minimum):</strong>
				The visual presentation of text has a contrast ratio of at least 4.5:1. (Level AA)</p>
				<a href="http://www.w3.org/WAI/WCAG20/quickref/#qr-visual-audio-contrast-contrast">How to Meet 1.4.3</a>
				<a href="http://www.w3.org/TR/UNDERSTANDING-WCAG20/visual-audio-contrast-contrast.html">Understanding 1.4.3</a>
			</li>
		</ul>
	</div>
</div>
</body>
</html>`

const recommendation21HTML = `<!DOCTYPE html>
<html>
<body>
<section class="principle" id="operable">
	<h2><bdi class="secno">2. </bdi>Operable<a class="self-link" href="#operable">§</a></h2>
	<p>User interface components and navigation must be operable.</p>
	<section class="guideline" id="keyboard-accessible">
		<h3><bdi class="secno">2.1 </bdi>Guideline 2.1 Keyboard Accessible<a class="self-link" href="#keyboard-accessible">§</a></h3>
		<p>Make all functionality available from a keyboard.</p>
		<section class="sc" id="keyboard">
			<h4>Success Criterion 2.1.1 Keyboard<a class="self-link" href="#keyboard">§</a></h4>
			<p class="conformance-level">(Level A)</p>
			<div class="doclinks">
				<a href="https://www.w3.org/WAI/WCAG21/Understanding/keyboard.html">Understanding Keyboard</a>
				<a href="https://www.w3.org/WAI/WCAG21/quickref/#keyboard">How to Meet Keyboard</a>
			</div>
		</section>
		<section class="sc" id="character-key-shortcuts">
			<h4>Success Criterion 2.1.4 Character Key Shortcuts<a class="self-link" href="#character-key-shortcuts">§</a></h4>
			<p class="conformance-level">(Level A)</p>
			<div class="doclinks">
				<a href="https://www.w3.org/WAI/WCAG21/Understanding/character-key-shortcuts.html">Understanding</a>
				<a href="https://www.w3.org/WAI/WCAG21/quickref/#character-key-shortcuts">How to Meet</a>
			</div>
		</section>
	</section>
</section>
</body>
</html>`

const recommendation22HTML = `<!DOCTYPE html>
<html>
<body>
<section class="principle" id="operable">
	<h2><bdi class="secno">2. </bdi>Operable<a class="self-link" href="#operable">§</a></h2>
	<p>User interface components and navigation must be operable.</p>
	<section class="guideline" id="navigable">
		<h3><bdi class="secno">2.4 </bdi>Guideline 2.4 Navigable<a class="self-link" href="#navigable">§</a></h3>
		<p>Provide ways to help users navigate, find content, and determine where they are.</p>
		<section class="sc" id="focus-not-obscured-minimum">
			<h4>Success Criterion 2.4.11 Focus Not Obscured (Minimum)<a class="self-link" href="#focus-not-obscured-minimum">§</a></h4>
			<p class="conformance-level">(Level AA)</p>
		</section>
	</section>
</section>
</body>
</html>`

func TestParser_ParseRecommendation(t *testing.T) {
	t.Parallel()

	t.Run("parses WCAG 2.0 layout", func(t *testing.T) {
		t.Parallel()

		principles, err := goquery.NewParser().ParseRecommendation(wcagref.Version20, "https://www.w3.org/TR/WCAG20/", recommendation20HTML)

		require.NoError(t, err)
		require.Contains(t, principles, 1)

		p := principles[1]
		assert.Equal(t, "perceivable", p.ID)
		assert.Equal(t, "Principle 1: Perceivable - Information and user interface components must be presentable to users in ways they can perceive.", p.Text)
		require.Len(t, p.Guidelines, 2)

		g := p.Guidelines[1]
		assert.Equal(t, "text-equiv", g.ID)
		assert.Equal(t, "Guideline 1.1 Text Alternatives: Provide text alternatives for any non-text content.", g.Text)
		assert.Equal(t, "http://www.w3.org/TR/UNDERSTANDING-WCAG20/text-equiv.html", g.DetailedReference)

		assert.Equal(t, &wcagref.SuccessCriterion{
			ID:                "text-equiv-all",
			Handle:            "1.1.1 Non-text Content",
			QuickReference:    "http://www.w3.org/WAI/WCAG20/quickref/#qr-text-equiv-all",
			DetailedReference: "http://www.w3.org/TR/UNDERSTANDING-WCAG20/text-equiv-all.html",
			Level:             wcagref.LevelA,
		}, g.SuccessCriteria[1])

		sc := p.Guidelines[4].SuccessCriteria[3]
		require.NotNil(t, sc)
		assert.Equal(t, "1.4.3 Contrast (Minimum)", sc.Handle)
		assert.Equal(t, wcagref.LevelAA, sc.Level)
	})

	t.Run("parses WCAG 2.1 layout with linked references", func(t *testing.T) {
		t.Parallel()

		principles, err := goquery.NewParser().ParseRecommendation(wcagref.Version21, "https://www.w3.org/TR/WCAG21/", recommendation21HTML)

		require.NoError(t, err)
		require.Contains(t, principles, 2)

		p := principles[2]
		assert.Equal(t, "operable", p.ID)
		assert.Equal(t, "2. Operable: User interface components and navigation must be operable.", p.Text)

		g := p.Guidelines[1]
		require.NotNil(t, g)
		assert.Equal(t, "2.1 Guideline 2.1 Keyboard Accessible: Make all functionality available from a keyboard.", g.Text)
		assert.Empty(t, g.DetailedReference)

		assert.Equal(t, &wcagref.SuccessCriterion{
			ID:                "keyboard",
			Handle:            "2.1.1 Keyboard",
			QuickReference:    "https://www.w3.org/WAI/WCAG21/quickref/#keyboard",
			DetailedReference: "https://www.w3.org/WAI/WCAG21/Understanding/keyboard.html",
			Level:             wcagref.LevelA,
		}, g.SuccessCriteria[1])

		assert.Contains(t, g.SuccessCriteria, 4)
		assert.NotContains(t, g.SuccessCriteria, 2)
	})

	t.Run("derives WCAG 2.2 references from criterion id", func(t *testing.T) {
		t.Parallel()

		principles, err := goquery.NewParser().ParseRecommendation(wcagref.Version22, "https://www.w3.org/TR/WCAG22/", recommendation22HTML)

		require.NoError(t, err)

		sc := principles[2].Guidelines[4].SuccessCriteria[11]
		require.NotNil(t, sc)
		assert.Equal(t, "2.4.11 Focus Not Obscured (Minimum)", sc.Handle)
		assert.Equal(t, "https://www.w3.org/WAI/WCAG22/quickref/#focus-not-obscured-minimum", sc.QuickReference)
		assert.Equal(t, "https://www.w3.org/WAI/WCAG22/Understanding/focus-not-obscured-minimum", sc.DetailedReference)
		assert.Equal(t, wcagref.LevelAA, sc.Level)
	})

	t.Run("fails when criterion has no conformance level", func(t *testing.T) {
		t.Parallel()

		html := `<section class="principle" id="operable">
			<h2><bdi class="secno">2. </bdi>Operable</h2><p>Operable.</p>
			<section class="guideline" id="keyboard-accessible">
				<h3>Guideline 2.1 Keyboard Accessible</h3><p>Keyboard.</p>
				<section class="sc" id="keyboard"><h4>Success Criterion 2.1.1 Keyboard</h4></section>
			</section>
		</section>`

		_, err := goquery.NewParser().ParseRecommendation(wcagref.Version22, "https://www.w3.org/TR/WCAG22/", html)

		require.Error(t, err)
		assert.Equal(t, wcagref.EINVALID, wcagref.ErrorCode(err))
	})

	t.Run("fails on page without principles", func(t *testing.T) {
		t.Parallel()

		_, err := goquery.NewParser().ParseRecommendation(wcagref.Version21, "https://www.w3.org/TR/WCAG21/", "<html><body><p>Moved</p></body></html>")

		require.Error(t, err)
		assert.Equal(t, wcagref.EINVALID, wcagref.ErrorCode(err))
	})

	t.Run("rejects unsupported version", func(t *testing.T) {
		t.Parallel()

		_, err := goquery.NewParser().ParseRecommendation("3.0", "https://www.w3.org/TR/wcag-3.0/", recommendation21HTML)

		assert.ErrorIs(t, err, wcagref.ErrInvalidVersion)
	})
}
