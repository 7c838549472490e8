// Package pagesift turns raw HTML markup into structured representations
// for an automation/assistant layer: a pruned content tree for
// summarization, a DOM map emphasizing interactive affordances, and a flat
// inventory of interactable controls with visibility and enablement
// metadata.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, trafilatura/, rod/).
package pagesift
