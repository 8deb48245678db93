package planner

import (
	"encoding/json"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Codec serializes whole collections for the KVStore.
type Codec interface {
	Name() string
	Marshal(v interface{}) ([]byte, error)
	Unmarshal(data []byte, v interface{}) error
}

type JSONCodec struct{}

func (JSONCodec) Name() string                               { return "json" }
func (JSONCodec) Marshal(v interface{}) ([]byte, error)      { return json.Marshal(v) }
func (JSONCodec) Unmarshal(data []byte, v interface{}) error { return json.Unmarshal(data, v) }

type YAMLCodec struct{}

func (YAMLCodec) Name() string                               { return "yaml" }
func (YAMLCodec) Marshal(v interface{}) ([]byte, error)      { return yaml.Marshal(v) }
func (YAMLCodec) Unmarshal(data []byte, v interface{}) error { return yaml.Unmarshal(data, v) }

// CodecByName returns the codec registered under name ("json" or "yaml").
func CodecByName(name string) (Codec, error) {
	switch name {
	case "", "json":
		return JSONCodec{}, nil
	case "yaml", "yml":
		return YAMLCodec{}, nil
	default:
		return nil, errors.Errorf("unknown encoding %q", name)
	}
}
