package domain

import "strings"

// Kind names the entity a status string belongs to.
type Kind string

const (
	KindOrder        Kind = "order"
	KindPackage      Kind = "package"
	KindBatch        Kind = "batch"
	KindReturn       Kind = "return"
	KindVerification Kind = "verification"
	KindInvoice      Kind = "invoice"
	KindListing      Kind = "listing"
	KindQC           Kind = "qc"
)

// Kinds lists every entity kind with a vocabulary table.
var Kinds = []Kind{KindOrder, KindPackage, KindBatch, KindReturn, KindVerification, KindInvoice, KindListing, KindQC}

// Color is the tag a badge is rendered with.
type Color string

const (
	ColorNeutral    Color = "neutral"
	ColorInfo       Color = "info"
	ColorProcessing Color = "processing"
	ColorSuccess    Color = "success"
	ColorWarning    Color = "warning"
	ColorDanger     Color = "danger"
)

// LocalizedString holds a label in Mongolian and English.
type LocalizedString struct {
	MN string `json:"mn"`
	EN string `json:"en"`
}

// In returns the label for lang ("mn" or "en"), falling back to whichever is set.
func (l LocalizedString) In(lang string) string {
	if strings.EqualFold(lang, "en") && l.EN != "" {
		return l.EN
	}
	if l.MN != "" {
		return l.MN
	}
	return l.EN
}

// Badge is the display form of a status value.
type Badge struct {
	// Raw is the status string exactly as the backend sent it.
	Raw   string          `json:"raw"`
	Label LocalizedString `json:"label"`
	Color Color           `json:"color"`
	// Known is false when Raw is not in the vocabulary; Label then equals Raw.
	Known bool `json:"known"`
}

// Text returns the label in lang.
func (b Badge) Text(lang string) string {
	return b.Label.In(lang)
}
