package model

import internalmodel "github.com/clinsafe/hazlog/internal/model"

// FieldKind re-exports the internal FieldKind enumeration.
type FieldKind = internalmodel.FieldKind

const (
	FieldKindText        = internalmodel.FieldKindText
	FieldKindSelect      = internalmodel.FieldKindSelect
	FieldKindMultiselect = internalmodel.FieldKindMultiselect
	FieldKindCalculate   = internalmodel.FieldKindCalculate
	FieldKindCode        = internalmodel.FieldKindCode
	FieldKindIcon        = internalmodel.FieldKindIcon
	FieldKindSeparator   = internalmodel.FieldKindSeparator
	FieldKindProse       = internalmodel.FieldKindProse
)

// TBC is the "to be confirmed" sentinel shared across the engine.
const TBC = internalmodel.TBC

type FieldOption = internalmodel.FieldOption
type TemplateField = internalmodel.TemplateField
type Values = internalmodel.Values
type HazardLog = internalmodel.HazardLog
