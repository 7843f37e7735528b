// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"encoding/json"
	goio "io"

	"github.com/ghodss/yaml"
)

// Encoder defines encoders; e.g. json or yaml
type Encoder interface {
	Encode(e interface{}) error
}

// GetEncoder returns a new encoder
//  Note: enctype = "json" or "yaml"; any other value gives "json"
func GetEncoder(w goio.Writer, enctype string) Encoder {
	if enctype == "yaml" {
		return &yamlEncoder{w}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc
}

// GetExt returns the file extension for an encoder type
func GetExt(enctype string) string {
	if enctype == "yaml" {
		return ".yaml"
	}
	return ".json"
}

// yamlEncoder encodes values as YAML via their json tags
type yamlEncoder struct {
	w goio.Writer
}

func (o *yamlEncoder) Encode(e interface{}) (err error) {
	b, err := yaml.Marshal(e)
	if err != nil {
		return
	}
	_, err = o.w.Write(b)
	return
}
