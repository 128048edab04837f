package dircache

import (
	"encoding/binary"
	"fmt"
	"hash/crc32"
	"time"

	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"
)

// MarshalRecord permits to encode a record in protobuf format
// followed by its checksum before being written to disk.
// Time values are encoded as RFC3339 strings and numbers are decoded as float64
func MarshalRecord(record *Record) ([]byte, error) {
	if record == nil {
		return nil, ErrNilRecord
	}

	fields, err := normalizeValue(record.Fields)
	if err != nil {
		return nil, err
	}
	if fields == nil {
		fields = map[string]any{}
	}

	references := make(map[string]any, len(record.References))
	for name, ids := range record.References {
		references[name] = stringsToAny(ids)
	}

	message, err := structpb.NewStruct(map[string]any{
		"id":         record.ID,
		"fields":     fields,
		"references": references,
	})
	if err != nil {
		return nil, fmt.Errorf("fail to encode record %s: %w", record.ID, err)
	}

	body, err := proto.Marshal(message)
	if err != nil {
		return nil, err
	}
	return binary.LittleEndian.AppendUint32(body, crc32.ChecksumIEEE(body)), nil
}

// UnmarshalRecord permit to decode a record
// by validating its checksum before moving further
func UnmarshalRecord(data []byte) (*Record, error) {
	if len(data) < 4 {
		return nil, ErrChecksumDataTooShort
	}

	body := data[:len(data)-4]
	if crc32.ChecksumIEEE(body) != binary.LittleEndian.Uint32(data[len(data)-4:]) {
		return nil, ErrChecksumMismatch
	}

	var message structpb.Struct
	if err := proto.Unmarshal(body, &message); err != nil {
		return nil, err
	}

	values := message.AsMap()
	record := NewRecord("")
	if id, ok := values["id"].(string); ok {
		record.ID = id
	}
	if fields, ok := values["fields"].(map[string]any); ok {
		record.Fields = fields
	}
	if references, ok := values["references"].(map[string]any); ok && len(references) > 0 {
		record.References = make(map[string][]string, len(references))
		for name, ids := range references {
			items, _ := ids.([]any)
			record.References[name] = anyToStrings(items)
		}
	}
	return record, nil
}

// normalizeValue converts values that structpb does not handle
func normalizeValue(value any) (any, error) {
	switch v := value.(type) {
	case []string:
		return stringsToAny(v), nil
	case time.Time:
		return v.Format(time.RFC3339Nano), nil
	case []any:
		result := make([]any, len(v))
		for i, item := range v {
			n, err := normalizeValue(item)
			if err != nil {
				return nil, err
			}
			result[i] = n
		}
		return result, nil
	case map[string]any:
		if v == nil {
			return nil, nil
		}
		result := make(map[string]any, len(v))
		for key, item := range v {
			n, err := normalizeValue(item)
			if err != nil {
				return nil, fmt.Errorf("field %s: %w", key, err)
			}
			result[key] = n
		}
		return result, nil
	default:
		return v, nil
	}
}

func stringsToAny(values []string) []any {
	result := make([]any, len(values))
	for i, v := range values {
		result[i] = v
	}
	return result
}

func anyToStrings(values []any) []string {
	result := make([]string, 0, len(values))
	for _, v := range values {
		if s, ok := v.(string); ok {
			result = append(result, s)
		}
	}
	return result
}
