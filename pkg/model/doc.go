// Package model defines the typed field model shared by the parser, the
// resolution helpers, and the renderers. Types are produced by the template
// parser under internal/template and are immutable once construction
// finishes: parsing plus taxonomy injection builds the field sequence exactly
// once, and every Generate call afterwards reads the same frozen slice.
// Values are the per-call, caller-owned counterpart and are never retained.
package model
