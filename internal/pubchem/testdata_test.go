// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pubchem

import (
	"fmt"
	"strings"
)

// synonymsXML renders a PUG REST synonyms document.
func synonymsXML(synonyms ...string) string {
	var b strings.Builder
	b.WriteString(`<?xml version="1.0"?>` + "\n")
	b.WriteString(`<InformationList xmlns="http://pubchem.ncbi.nlm.nih.gov/pug_rest" xmlns:xs="http://www.w3.org/2001/XMLSchema-instance">` + "\n")
	b.WriteString("  <Information>\n    <CID>712</CID>\n")
	for _, s := range synonyms {
		fmt.Fprintf(&b, "    <Synonym>%s</Synonym>\n", s)
	}
	b.WriteString("  </Information>\n</InformationList>\n")
	return b.String()
}
