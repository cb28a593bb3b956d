package tools

import (
	"encoding/json"
	"fmt"
	"math"
	"time"

	"github.com/shopspring/decimal"

	"github.com/cloud-ru/emi-finance-go/internal/calculations"
	"github.com/cloud-ru/emi-finance-go/pkg/utils"
)

func paramError(name string, format string, args ...interface{}) error {
	return fmt.Errorf("%w: invalid parameter %s: %s", calculations.ErrInvalidInput, name, fmt.Sprintf(format, args...))
}

func floatParam(params map[string]interface{}, name string) (float64, error) {
	raw, ok := params[name]
	if !ok || raw == nil {
		return 0, paramError(name, "required")
	}
	switch v := raw.(type) {
	case float64:
		return v, nil
	case int:
		return float64(v), nil
	case int64:
		return float64(v), nil
	case json.Number:
		f, err := v.Float64()
		if err != nil {
			return 0, paramError(name, "%v", err)
		}
		return f, nil
	default:
		return 0, paramError(name, "expected number, got %T", raw)
	}
}

func intParam(params map[string]interface{}, name string) (int, error) {
	f, err := floatParam(params, name)
	if err != nil {
		return 0, err
	}
	if f != math.Trunc(f) || !utils.IsFinite(f) {
		return 0, paramError(name, "expected whole number, got %v", f)
	}
	return int(f), nil
}

func optionalIntParam(params map[string]interface{}, name string) (*int, error) {
	if raw, ok := params[name]; !ok || raw == nil {
		return nil, nil
	}
	v, err := intParam(params, name)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func stringParam(params map[string]interface{}, name string) (string, error) {
	raw, ok := params[name]
	if !ok || raw == nil {
		return "", paramError(name, "required")
	}
	s, ok := raw.(string)
	if !ok {
		return "", paramError(name, "expected string, got %T", raw)
	}
	return s, nil
}

func dateParam(params map[string]interface{}, name string) (time.Time, error) {
	s, err := stringParam(params, name)
	if err != nil {
		return time.Time{}, err
	}
	d, err := utils.ParseDate(s)
	if err != nil {
		return time.Time{}, paramError(name, "expected YYYY-MM-DD, got %q", s)
	}
	return d, nil
}

// optionalDateParam возвращает нулевое время, если дата не передана
func optionalDateParam(params map[string]interface{}, name string) (time.Time, error) {
	if raw, ok := params[name]; !ok || raw == nil || raw == "" {
		return time.Time{}, nil
	}
	return dateParam(params, name)
}

func decimalParam(params map[string]interface{}, name string) (decimal.Decimal, error) {
	raw, ok := params[name]
	if !ok || raw == nil {
		return decimal.Zero, paramError(name, "required")
	}
	switch v := raw.(type) {
	case string:
		d, err := decimal.NewFromString(v)
		if err != nil {
			return decimal.Zero, paramError(name, "%v", err)
		}
		return d, nil
	default:
		f, err := floatParam(params, name)
		if err != nil {
			return decimal.Zero, err
		}
		return decimal.NewFromFloat(f), nil
	}
}

// objectParam перекладывает вложенный объект в типизированную запись через JSON.
// Поля dateFields принимаются как YYYY-MM-DD или RFC 3339, пустая строка означает отсутствие даты.
func objectParam(params map[string]interface{}, name string, dst interface{}, dateFields ...string) error {
	raw, ok := params[name]
	if !ok || raw == nil {
		return paramError(name, "required")
	}
	obj, ok := raw.(map[string]interface{})
	if !ok {
		return paramError(name, "expected object, got %T", raw)
	}

	normalized := make(map[string]interface{}, len(obj))
	for k, v := range obj {
		normalized[k] = v
	}
	for _, field := range dateFields {
		value, present := normalized[field]
		if !present || value == nil {
			continue
		}
		s, ok := value.(string)
		if !ok {
			return paramError(name, "%s: expected date string, got %T", field, value)
		}
		if s == "" {
			delete(normalized, field)
			continue
		}
		if d, err := utils.ParseDate(s); err == nil {
			normalized[field] = d.Format(time.RFC3339)
		} else if _, err := time.Parse(time.RFC3339, s); err != nil {
			return paramError(name, "%s: expected YYYY-MM-DD, got %q", field, s)
		}
	}

	data, err := json.Marshal(normalized)
	if err != nil {
		return paramError(name, "%v", err)
	}
	if err := json.Unmarshal(data, dst); err != nil {
		return paramError(name, "%v", err)
	}
	return nil
}
