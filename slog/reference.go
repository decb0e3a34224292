package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/wcagref"
)

// Ensure LoggingReference implements wcagref.ReferenceService.
var _ wcagref.ReferenceService = (*LoggingReference)(nil)

// LoggingReference wraps a ReferenceService with debug logging.
type LoggingReference struct {
	next   wcagref.ReferenceService
	logger *slog.Logger
}

// NewLoggingReference creates a new LoggingReference.
func NewLoggingReference(next wcagref.ReferenceService, logger *slog.Logger) *LoggingReference {
	return &LoggingReference{next: next, logger: logger}
}

func (r *LoggingReference) log(op string, begin time.Time, err error, attrs ...any) {
	attrs = append(attrs, "duration", time.Since(begin), "err", err)
	r.logger.Log(context.Background(), slog.LevelDebug, op, attrs...)
}

func coordinates(chapter, section, subsection int) string {
	return wcagref.Coordinates{Chapter: chapter, Section: section, Subsection: subsection}.String()
}

func (r *LoggingReference) CriterionData(version string, chapter, section, subsection int) (rec *wcagref.CriterionRecord, err error) {
	defer func(begin time.Time) {
		r.log("criterion data", begin, err, "version", version, "criterion", coordinates(chapter, section, subsection))
	}(time.Now())
	return r.next.CriterionData(version, chapter, section, subsection)
}

func (r *LoggingReference) LinkToCriterion(version string, chapter, section, subsection int) (link string, err error) {
	defer func(begin time.Time) {
		r.log("criterion link", begin, err, "version", version, "criterion", coordinates(chapter, section, subsection))
	}(time.Now())
	return r.next.LinkToCriterion(version, chapter, section, subsection)
}

func (r *LoggingReference) TechniqueData(version, technique string) (rec *wcagref.TechniqueRecord, err error) {
	defer func(begin time.Time) {
		r.log("technique data", begin, err, "version", version, "technique", technique)
	}(time.Now())
	return r.next.TechniqueData(version, technique)
}

func (r *LoggingReference) LinkToTechnique(version, technique string) (link string, err error) {
	defer func(begin time.Time) {
		r.log("technique link", begin, err, "version", version, "technique", technique)
	}(time.Now())
	return r.next.LinkToTechnique(version, technique)
}

func (r *LoggingReference) FindCriteria(version string, filter wcagref.CriterionFilter) (recs []*wcagref.CriterionRecord, err error) {
	defer func(begin time.Time) {
		r.log("find criteria", begin, err,
			"version", version,
			"chapter", filter.Chapter,
			"section", filter.Section,
			"conformance", filter.Level,
			"count", len(recs),
		)
	}(time.Now())
	return r.next.FindCriteria(version, filter)
}

func (r *LoggingReference) FindTechniques(version, group string) (entries []*wcagref.TechniqueEntry, err error) {
	defer func(begin time.Time) {
		r.log("find techniques", begin, err, "version", version, "group", group, "count", len(entries))
	}(time.Now())
	return r.next.FindTechniques(version, group)
}
