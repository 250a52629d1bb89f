// Package project persists scenes as versioned JSON documents and loads
// them back losslessly. Loading validates the document against a JSON
// Schema before decoding, so structural damage surfaces as one clear error
// instead of a half-built scene.
package project

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"gridd/core"
	"gridd/scene"
)

// Version is the current document format version.
const Version = 1

// Document is the persisted project shape.
type Document struct {
	Version   int       `json:"version"`
	Name      string    `json:"name"`
	Timestamp time.Time `json:"timestamp"`
	Scene     SceneDoc  `json:"scene"`
}

// SceneDoc is the persisted scene shape.
type SceneDoc struct {
	Width         int        `json:"w"`
	Height        int        `json:"h"`
	PaletteID     string     `json:"paletteId"`
	ActiveLayerID int        `json:"activeLayerId"`
	Layers        []LayerDoc `json:"layers"`
}

// LayerDoc is the persisted layer shape. Cells are stored in dense index
// order (y*width + x).
type LayerDoc struct {
	ID        int         `json:"id"`
	Name      string      `json:"name"`
	Visible   bool        `json:"visible"`
	Locked    bool        `json:"locked"`
	Ligatures bool        `json:"ligatures"`
	Cells     []core.Cell `json:"cells"`
}

// FromScene captures a scene into a document.
func FromScene(s *scene.Scene, name, paletteID string) *Document {
	w, h := s.Size()
	doc := &Document{
		Version:   Version,
		Name:      name,
		Timestamp: time.Now().UTC(),
		Scene: SceneDoc{
			Width:         w,
			Height:        h,
			PaletteID:     paletteID,
			ActiveLayerID: s.ActiveLayerID(),
		},
	}
	for _, l := range s.Layers() {
		doc.Scene.Layers = append(doc.Scene.Layers, LayerDoc{
			ID:        l.ID(),
			Name:      l.Name(),
			Visible:   l.Visible(),
			Locked:    l.Locked(),
			Ligatures: l.Ligatures(),
			Cells:     l.Cells(),
		})
	}
	return doc
}

// ToScene rebuilds the scene a document describes.
func (d *Document) ToScene() (*scene.Scene, error) {
	if d.Version != Version {
		return nil, fmt.Errorf("project: unsupported version %d", d.Version)
	}
	layers := make([]*scene.Layer, 0, len(d.Scene.Layers))
	for _, ld := range d.Scene.Layers {
		l, err := scene.NewLayerWithCells(ld.ID, ld.Name, d.Scene.Width, d.Scene.Height, ld.Cells)
		if err != nil {
			return nil, fmt.Errorf("project: %w", err)
		}
		l.SetVisible(ld.Visible)
		l.SetLocked(ld.Locked)
		l.SetLigatures(ld.Ligatures)
		layers = append(layers, l)
	}
	return scene.Restore(d.Scene.Width, d.Scene.Height, layers, d.Scene.ActiveLayerID)
}

// Save writes the document as indented JSON.
func Save(path string, d *Document) error {
	data, err := json.MarshalIndent(d, "", "  ")
	if err != nil {
		return fmt.Errorf("project %s: %w", path, err)
	}
	return os.WriteFile(path, data, 0644)
}

// Load reads, validates and decodes a project file.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Decode(data)
}

// Decode validates raw project JSON against the document schema and
// unmarshals it.
func Decode(data []byte) (*Document, error) {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("project: %w", err)
	}
	if err := documentSchema.Validate(raw); err != nil {
		return nil, fmt.Errorf("project: invalid document: %w", err)
	}
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("project: %w", err)
	}
	return &doc, nil
}

var documentSchema = jsonschema.MustCompileString("gridd-project.schema.json", `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object",
  "required": ["version", "scene"],
  "properties": {
    "version": {"type": "integer", "minimum": 1},
    "name": {"type": "string"},
    "timestamp": {"type": "string"},
    "scene": {
      "type": "object",
      "required": ["w", "h", "activeLayerId", "layers"],
      "properties": {
        "w": {"type": "integer", "minimum": 1},
        "h": {"type": "integer", "minimum": 1},
        "paletteId": {"type": "string"},
        "activeLayerId": {"type": "integer"},
        "layers": {
          "type": "array",
          "minItems": 1,
          "items": {
            "type": "object",
            "required": ["id", "name", "cells"],
            "properties": {
              "id": {"type": "integer"},
              "name": {"type": "string"},
              "visible": {"type": "boolean"},
              "locked": {"type": "boolean"},
              "ligatures": {"type": "boolean"},
              "cells": {
                "type": "array",
                "items": {
                  "type": "object",
                  "required": ["ch", "fg", "bg"],
                  "properties": {
                    "ch": {"type": "string", "minLength": 1},
                    "fg": {"type": "integer"},
                    "bg": {"type": "integer"}
                  }
                }
              }
            }
          }
        }
      }
    }
  }
}`)
