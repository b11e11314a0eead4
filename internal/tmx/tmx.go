// Package tmx renders source/romanized segment pairs as a TMX 1.4
// document, the interchange format translation-memory tools import.
package tmx

import (
	"encoding/xml"
	"fmt"
	"io"
	"strings"
	"time"
)

const (
	creationTool        = "xlit"
	creationToolVersion = "1.0"

	// TMX dates are basic-format ISO 8601 in UTC.
	dateLayout = "20060102T150405Z"
)

type Document struct {
	XMLName xml.Name `xml:"tmx"`
	Version string   `xml:"version,attr"`
	Header  Header   `xml:"header"`
	Body    Body     `xml:"body"`
}

type Header struct {
	CreationTool        string   `xml:"creationtool,attr"`
	CreationToolVersion string   `xml:"creationtoolversion,attr"`
	DataType            string   `xml:"datatype,attr"`
	SegType             string   `xml:"segtype,attr"`
	AdminLang           string   `xml:"adminlang,attr"`
	SrcLang             string   `xml:"srclang,attr"`
	OTMF                string   `xml:"o-tmf,attr"`
	CreationDate        string   `xml:"creationdate,attr"`
	Notes               []string `xml:"note"`
}

type Body struct {
	Units []Unit `xml:"tu"`
}

type Unit struct {
	Variants []Variant `xml:"tuv"`
}

type Variant struct {
	Lang string `xml:"xml:lang,attr"`
	Seg  string `xml:"seg"`
}

// Pair is one aligned segment: the source text and its romanization.
type Pair struct {
	Source string
	Target string
}

// New builds a document for pairs produced by the named method. srclang
// is the ISO code of the source language; the target is always Latin
// romanization, recorded as English.
func New(method, srclang string, pairs []Pair, now time.Time) *Document {
	doc := &Document{
		Version: "1.4",
		Header: Header{
			CreationTool:        creationTool,
			CreationToolVersion: creationToolVersion,
			DataType:            "plaintext",
			SegType:             "sentence",
			AdminLang:           "en-US",
			SrcLang:             srclang,
			OTMF:                "plain text",
			CreationDate:        now.UTC().Format(dateLayout),
			Notes:               []string{"Romanization method: " + method},
		},
	}
	for _, p := range pairs {
		doc.Body.Units = append(doc.Body.Units, Unit{
			Variants: []Variant{
				{Lang: srclang, Seg: p.Source},
				{Lang: "en", Seg: p.Target},
			},
		})
	}
	return doc
}

// Write emits the document with an XML declaration. Escaping of segment
// text is the encoder's job.
func (d *Document) Write(w io.Writer) error {
	if _, err := io.WriteString(w, xml.Header); err != nil {
		return fmt.Errorf("writing XML declaration: %w", err)
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(d); err != nil {
		return fmt.Errorf("encoding TMX: %w", err)
	}
	if _, err := io.WriteString(w, "\n"); err != nil {
		return err
	}
	return nil
}

// FromLines aligns source and romanized text line by line and returns the
// pairs where both sides are non-empty after trimming.
func FromLines(source, target string) []Pair {
	srcLines := strings.Split(source, "\n")
	tgtLines := strings.Split(target, "\n")

	var pairs []Pair
	for i, src := range srcLines {
		if i >= len(tgtLines) {
			break
		}
		src = strings.TrimSpace(src)
		tgt := strings.TrimSpace(tgtLines[i])
		if src == "" || tgt == "" {
			continue
		}
		pairs = append(pairs, Pair{Source: src, Target: tgt})
	}
	return pairs
}
