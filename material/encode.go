// Copyright 2024 Dominik Honnef and contributors
// SPDX-License-Identifier: Apache-2.0 OR MIT

package material

import (
	"errors"
	"fmt"
	"math"

	"google.golang.org/protobuf/encoding/protowire"
	"honnef.co/go/safeish"

	"honnef.co/go/zonetool/gfx"
	"honnef.co/go/zonetool/techset"
	"honnef.co/go/zonetool/zone"
)

// Constant names are stored in fixed 12 byte fields by the engine.
const constantNameLength = 12

// Field numbers of the material record.
const (
	fieldName           protowire.Number = 1
	fieldSortKey        protowire.Number = 2
	fieldAtlasRows      protowire.Number = 3
	fieldAtlasColumns   protowire.Number = 4
	fieldCameraRegion   protowire.Number = 5
	fieldTechniqueSet   protowire.Number = 6
	fieldTexture        protowire.Number = 7
	fieldConstant       protowire.Number = 8
	fieldStateBits      protowire.Number = 9
	fieldStateBitsEntry protowire.Number = 10
)

const (
	fieldTextureNameHash     protowire.Number = 1
	fieldTextureNameStart    protowire.Number = 2
	fieldTextureNameEnd      protowire.Number = 3
	fieldTextureSamplerState protowire.Number = 4
	fieldTextureSemantic     protowire.Number = 5
	fieldTextureImage        protowire.Number = 6
)

const (
	fieldConstantName     protowire.Number = 1
	fieldConstantNameHash protowire.Number = 2
	fieldConstantLiteral  protowire.Number = 3
)

// Marshal encodes a material in protobuf wire format. Technique sets and
// images are stored by name. State bits are stored in host byte order.
func Marshal(m *Material) []byte {
	var b []byte
	b = protowire.AppendTag(b, fieldName, protowire.BytesType)
	b = protowire.AppendString(b, m.Name)
	b = appendVarint(b, fieldSortKey, uint64(m.SortKey))
	b = appendVarint(b, fieldAtlasRows, uint64(m.TextureAtlasRowCount))
	b = appendVarint(b, fieldAtlasColumns, uint64(m.TextureAtlasColumnCount))
	b = appendVarint(b, fieldCameraRegion, uint64(m.CameraRegion))
	if m.TechniqueSet != nil {
		b = protowire.AppendTag(b, fieldTechniqueSet, protowire.BytesType)
		b = protowire.AppendString(b, m.TechniqueSet.Name)
	}

	for _, tex := range m.Textures {
		var sub []byte
		sub = protowire.AppendTag(sub, fieldTextureNameHash, protowire.Fixed32Type)
		sub = protowire.AppendFixed32(sub, tex.NameHash)
		sub = appendVarint(sub, fieldTextureNameStart, uint64(tex.NameStart))
		sub = appendVarint(sub, fieldTextureNameEnd, uint64(tex.NameEnd))
		sub = appendVarint(sub, fieldTextureSamplerState, uint64(tex.SamplerState))
		sub = appendVarint(sub, fieldTextureSemantic, uint64(tex.Semantic))
		if tex.Image != nil {
			sub = protowire.AppendTag(sub, fieldTextureImage, protowire.BytesType)
			sub = protowire.AppendString(sub, tex.Image.Name)
		}
		b = protowire.AppendTag(b, fieldTexture, protowire.BytesType)
		b = protowire.AppendBytes(b, sub)
	}

	for _, c := range m.Constants {
		name := c.Name
		if len(name) > constantNameLength {
			name = name[:constantNameLength]
		}
		var sub []byte
		sub = protowire.AppendTag(sub, fieldConstantName, protowire.BytesType)
		sub = protowire.AppendString(sub, name)
		sub = protowire.AppendTag(sub, fieldConstantNameHash, protowire.Fixed32Type)
		sub = protowire.AppendFixed32(sub, c.NameHash)
		var lit []byte
		for _, f := range c.Literal {
			lit = protowire.AppendFixed32(lit, math.Float32bits(f))
		}
		sub = protowire.AppendTag(sub, fieldConstantLiteral, protowire.BytesType)
		sub = protowire.AppendBytes(sub, lit)
		b = protowire.AppendTag(b, fieldConstant, protowire.BytesType)
		b = protowire.AppendBytes(b, sub)
	}

	if len(m.StateBits) != 0 {
		b = protowire.AppendTag(b, fieldStateBits, protowire.BytesType)
		b = protowire.AppendBytes(b, safeish.SliceCast[[]byte](m.StateBits))
	}
	b = protowire.AppendTag(b, fieldStateBitsEntry, protowire.BytesType)
	b = protowire.AppendBytes(b, m.StateBitsEntry[:])
	return b
}

func appendVarint(b []byte, num protowire.Number, v uint64) []byte {
	b = protowire.AppendTag(b, num, protowire.VarintType)
	return protowire.AppendVarint(b, v)
}

var errMalformed = errors.New("malformed material record")

// fields calls fn for every field of a message. fn returns the number of
// bytes it consumed, or a negative protowire error code.
func fields(b []byte, fn func(num protowire.Number, typ protowire.Type, b []byte) int) error {
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return fmt.Errorf("%w: %w", errMalformed, protowire.ParseError(n))
		}
		b = b[n:]
		n = fn(num, typ, b)
		if n < 0 {
			return fmt.Errorf("%w: %w", errMalformed, protowire.ParseError(n))
		}
		b = b[n:]
	}
	return nil
}

// Unmarshal decodes a material encoded by Marshal. Technique sets and images
// only carry their names.
func Unmarshal(data []byte) (*Material, error) {
	m := &Material{}
	var subErr error
	err := fields(data, func(num protowire.Number, typ protowire.Type, b []byte) int {
		switch {
		case typ == protowire.VarintType:
			v, n := protowire.ConsumeVarint(b)
			if n < 0 {
				return n
			}
			switch num {
			case fieldSortKey:
				m.SortKey = uint8(v)
			case fieldAtlasRows:
				m.TextureAtlasRowCount = uint8(v)
			case fieldAtlasColumns:
				m.TextureAtlasColumnCount = uint8(v)
			case fieldCameraRegion:
				m.CameraRegion = CameraRegion(v)
			}
			return n

		case typ == protowire.BytesType:
			v, n := protowire.ConsumeBytes(b)
			if n < 0 {
				return n
			}
			switch num {
			case fieldName:
				m.Name = string(v)
			case fieldTechniqueSet:
				m.TechniqueSet = &techset.TechniqueSet{Name: string(v)}
			case fieldTexture:
				tex, err := unmarshalTexture(v)
				if err != nil {
					subErr = err
				}
				m.Textures = append(m.Textures, tex)
			case fieldConstant:
				c, err := unmarshalConstant(v)
				if err != nil {
					subErr = err
				}
				m.Constants = append(m.Constants, c)
			case fieldStateBits:
				if len(v)%8 != 0 {
					subErr = fmt.Errorf("%w: state bits table has %d bytes", errMalformed, len(v))
					break
				}
				m.StateBits = make([]gfx.StateBits, len(v)/8)
				copy(safeish.SliceCast[[]byte](m.StateBits), v)
			case fieldStateBitsEntry:
				if len(v) != len(m.StateBitsEntry) {
					subErr = fmt.Errorf("%w: got %d technique entries", errMalformed, len(v))
					break
				}
				copy(m.StateBitsEntry[:], v)
			}
			return n

		default:
			return protowire.ConsumeFieldValue(num, typ, b)
		}
	})
	if err != nil {
		return nil, err
	}
	if subErr != nil {
		return nil, subErr
	}
	return m, nil
}

func unmarshalTexture(data []byte) (TextureDef, error) {
	var tex TextureDef
	err := fields(data, func(num protowire.Number, typ protowire.Type, b []byte) int {
		switch {
		case num == fieldTextureNameHash && typ == protowire.Fixed32Type:
			v, n := protowire.ConsumeFixed32(b)
			tex.NameHash = v
			return n
		case num == fieldTextureImage && typ == protowire.BytesType:
			v, n := protowire.ConsumeBytes(b)
			if n >= 0 {
				tex.Image = &zone.Image{Name: string(v), Builtin: len(v) > 0 && v[0] == '$'}
			}
			return n
		case typ == protowire.VarintType:
			v, n := protowire.ConsumeVarint(b)
			switch num {
			case fieldTextureNameStart:
				tex.NameStart = byte(v)
			case fieldTextureNameEnd:
				tex.NameEnd = byte(v)
			case fieldTextureSamplerState:
				tex.SamplerState = uint8(v)
			case fieldTextureSemantic:
				tex.Semantic = gfx.TextureSemantic(v)
			}
			return n
		default:
			return protowire.ConsumeFieldValue(num, typ, b)
		}
	})
	return tex, err
}

func unmarshalConstant(data []byte) (ConstantDef, error) {
	var c ConstantDef
	var litErr error
	err := fields(data, func(num protowire.Number, typ protowire.Type, b []byte) int {
		switch {
		case num == fieldConstantName && typ == protowire.BytesType:
			v, n := protowire.ConsumeBytes(b)
			c.Name = string(v)
			return n
		case num == fieldConstantNameHash && typ == protowire.Fixed32Type:
			v, n := protowire.ConsumeFixed32(b)
			c.NameHash = v
			return n
		case num == fieldConstantLiteral && typ == protowire.BytesType:
			v, n := protowire.ConsumeBytes(b)
			if n < 0 {
				return n
			}
			if len(v) != 16 {
				litErr = fmt.Errorf("%w: constant literal has %d bytes", errMalformed, len(v))
				return n
			}
			for i := range c.Literal {
				bits, _ := protowire.ConsumeFixed32(v[i*4:])
				c.Literal[i] = math.Float32frombits(bits)
			}
			return n
		default:
			return protowire.ConsumeFieldValue(num, typ, b)
		}
	})
	if err == nil {
		err = litErr
	}
	return c, err
}
