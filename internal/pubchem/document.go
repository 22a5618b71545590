// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pubchem

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Namespace is the XML namespace of PUG REST result elements.
const Namespace = "http://pubchem.ncbi.nlm.nih.gov/pug_rest"

// synonymName is the qualified name matched by the synonym query.
var synonymName = xml.Name{Space: Namespace, Local: "Synonym"}

// InformationList is the document returned by the synonyms endpoint:
//
//	<InformationList xmlns="http://pubchem.ncbi.nlm.nih.gov/pug_rest">
//	  <Information>
//	    <CID>712</CID>
//	    <Synonym>formaldehyde</Synonym>
//	    ...
//	  </Information>
//	</InformationList>
//
// The root element name is not enforced so that any well-formed document
// without matching children decodes to an empty list.
type InformationList struct {
	Information []Information `xml:"http://pubchem.ncbi.nlm.nih.gov/pug_rest Information"`

	// synonyms holds every namespaced Synonym element found at any depth.
	synonyms []string
}

// Information holds the synonyms for one compound record.
type Information struct {
	CID      string   `xml:"http://pubchem.ncbi.nlm.nih.gov/pug_rest CID"`
	Synonyms []string `xml:"http://pubchem.ncbi.nlm.nih.gov/pug_rest Synonym"`
}

// Synonyms returns every namespaced Synonym element in document order,
// wherever it appears below the root.
func (l InformationList) Synonyms() []string {
	return l.synonyms
}

// ParseInformationList decodes a synonyms document from r. Anything other
// than whitespace, comments or processing instructions after the root
// element is rejected.
func ParseInformationList(r io.Reader) (InformationList, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return InformationList{}, fmt.Errorf("parsing PubChem response: %w", err)
	}

	dec := xml.NewDecoder(bytes.NewReader(data))
	var doc InformationList
	if err := dec.Decode(&doc); err != nil {
		return InformationList{}, fmt.Errorf("parsing PubChem response: %w", err)
	}
	if err := expectEOF(dec); err != nil {
		return InformationList{}, fmt.Errorf("parsing PubChem response: %w", err)
	}

	doc.synonyms, err = findAll(bytes.NewReader(data), synonymName)
	if err != nil {
		return InformationList{}, fmt.Errorf("parsing PubChem response: %w", err)
	}
	return doc, nil
}

// expectEOF consumes the tokens that follow the root element.
func expectEOF(dec *xml.Decoder) error {
	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		switch t := tok.(type) {
		case xml.Comment, xml.ProcInst:
		case xml.CharData:
			if strings.TrimSpace(string(t)) != "" {
				return fmt.Errorf("unexpected text after root element")
			}
		default:
			return fmt.Errorf("unexpected content after root element")
		}
	}
}

// findAll returns the character data of every element named name, at any
// depth, in document order.
func findAll(r io.Reader, name xml.Name) ([]string, error) {
	dec := xml.NewDecoder(r)
	var out []string
	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			return out, nil
		}
		if err != nil {
			return nil, err
		}
		start, ok := tok.(xml.StartElement)
		if !ok || start.Name != name {
			continue
		}
		var text string
		if err := dec.DecodeElement(&text, &start); err != nil {
			return nil, err
		}
		out = append(out, text)
	}
}
