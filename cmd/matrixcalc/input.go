// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// document is one matrix read from an input file. A YAML (or JSON) document
// is either a bare list of rows or a mapping with "rows" and an optional "name".
type document struct {
	Name string      `yaml:"name"`
	Rows [][]float64 `yaml:"rows"`
}

// decodeDocuments reads every YAML document from r.
func decodeDocuments(r io.Reader) ([]document, error) {
	dec := yaml.NewDecoder(r)
	var docs []document
	for {
		var node yaml.Node
		err := dec.Decode(&node)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("decode document %d: %w", len(docs)+1, err)
		}
		doc, err := decodeNode(&node)
		if err != nil {
			return nil, fmt.Errorf("decode document %d: %w", len(docs)+1, err)
		}
		docs = append(docs, doc)
	}
	if len(docs) == 0 {
		return nil, errors.New("no matrix documents")
	}

	return docs, nil
}

func decodeNode(node *yaml.Node) (document, error) {
	root := node
	if root.Kind == yaml.DocumentNode && len(root.Content) > 0 {
		root = root.Content[0]
	}

	var doc document
	switch root.Kind {
	case yaml.SequenceNode:
		if err := root.Decode(&doc.Rows); err != nil {
			return document{}, err
		}
	case yaml.MappingNode:
		if err := root.Decode(&doc); err != nil {
			return document{}, err
		}
	default:
		return document{}, fmt.Errorf("line %d: want a list of rows or a mapping with rows", root.Line)
	}

	return doc, nil
}

// readDocuments opens path and decodes it; "-" reads standard input.
func readDocuments(path string, stdin io.Reader) ([]document, error) {
	if path == "-" {
		return decodeDocuments(stdin)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	docs, err := decodeDocuments(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return docs, nil
}
