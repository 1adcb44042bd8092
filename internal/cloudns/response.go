package cloudns

import (
	"encoding/json"
	"strconv"
	"strings"
)

// ResponseShape tags the body shapes the ClouDNS API produces. The API is
// not consistent across endpoints or versions: the same call may answer
// with an object, an array or a bare scalar.
type ResponseShape int

const (
	ShapeObject ResponseShape = iota + 1
	ShapeList
	ShapeScalar
)

func (s ResponseShape) String() string {
	switch s {
	case ShapeObject:
		return "object"
	case ShapeList:
		return "list"
	case ShapeScalar:
		return "scalar"
	default:
		return "unknown"
	}
}

// Response is an API body decoded exactly once at the transport boundary.
// Callers switch on Shape instead of re-inspecting raw JSON.
type Response struct {
	shape  ResponseShape
	object map[string]any
	list   []any
	scalar any
}

func decodeResponse(body []byte) (Response, error) {
	var raw any
	if err := json.Unmarshal(body, &raw); err != nil {
		return Response{}, err
	}

	switch v := raw.(type) {
	case map[string]any:
		return Response{shape: ShapeObject, object: v}, nil
	case []any:
		return Response{shape: ShapeList, list: v}, nil
	default:
		return Response{shape: ShapeScalar, scalar: v}, nil
	}
}

func (r Response) Shape() ResponseShape {
	return r.shape
}

func (r Response) Object() (map[string]any, bool) {
	return r.object, r.shape == ShapeObject
}

func (r Response) List() ([]any, bool) {
	return r.list, r.shape == ShapeList
}

func (r Response) Scalar() (any, bool) {
	return r.scalar, r.shape == ShapeScalar
}

// Failed reports whether the body is an object with "status": "Failed".
// The status value is matched case-sensitively, as the API emits it.
func (r Response) Failed() bool {
	return r.status() == "Failed"
}

// Succeeded reports whether the body is an object with "status": "Success".
func (r Response) Succeeded() bool {
	return r.status() == "Success"
}

func (r Response) status() string {
	if r.shape != ShapeObject {
		return ""
	}
	status, _ := r.object["status"].(string)
	return status
}

// StatusDescription returns the object's statusDescription field, or ""
// for bodies that do not carry one.
func (r Response) StatusDescription() string {
	if r.shape != ShapeObject {
		return ""
	}
	desc, _ := r.object["statusDescription"].(string)
	return desc
}

// Int coerces the body into an integer. It accepts a bare number, a
// numeric string and an object carrying a "count" field, the shapes the
// pages-count endpoint has been seen to answer with.
func (r Response) Int() (int, bool) {
	switch r.shape {
	case ShapeScalar:
		return coerceInt(r.scalar)
	case ShapeObject:
		if count, ok := r.object["count"]; ok {
			return coerceInt(count)
		}
	}
	return 0, false
}

func coerceInt(v any) (int, bool) {
	switch n := v.(type) {
	case float64:
		return int(n), true
	case string:
		i, err := strconv.Atoi(strings.TrimSpace(n))
		if err != nil {
			return 0, false
		}
		return i, true
	default:
		return 0, false
	}
}
