package dto

import (
	"reflect"
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	FilterOperatorEq        = "eq"
	FilterOperatorLike      = "like"
	FilterOperatorIn        = "in"
	FilterOperatorNotEq     = "not_eq"
	FilterOperatorLessEq    = "less_eq"
	FilterOperatorGreaterEq = "greater_eq"
	FilterIsNotNull         = "is_not_null"
	FilterIsNull            = "is_null"
)

const (
	FilterGroupOperatorAnd = "AND"
	FilterGroupOperatorOr  = "OR"
)

type Filter struct {
	Field    string
	Value    any
	Operator string `validate:"required,oneof=eq like in not_eq less_eq greater_eq is_not_null is_null"`
}

// ToBSON returns the single-field condition for the filter. The boolean is
// false when the operator is unknown and the filter should be skipped.
func (f *Filter) ToBSON() (bson.E, bool) {
	switch f.Operator {
	case FilterOperatorEq:
		return bson.E{Key: f.Field, Value: f.Value}, true
	case FilterOperatorLike:
		str, _ := f.Value.(string)
		pattern := primitive.Regex{Pattern: regexp.QuoteMeta(str), Options: "i"}

		return bson.E{Key: f.Field, Value: pattern}, true
	case FilterOperatorIn:
		return bson.E{Key: f.Field, Value: bson.D{{Key: "$in", Value: toSlice(f.Value)}}}, true
	case FilterOperatorNotEq:
		return bson.E{Key: f.Field, Value: bson.D{{Key: "$ne", Value: f.Value}}}, true
	case FilterOperatorLessEq:
		return bson.E{Key: f.Field, Value: bson.D{{Key: "$lte", Value: f.Value}}}, true
	case FilterOperatorGreaterEq:
		return bson.E{Key: f.Field, Value: bson.D{{Key: "$gte", Value: f.Value}}}, true
	case FilterIsNotNull:
		return bson.E{Key: f.Field, Value: bson.D{{Key: "$ne", Value: nil}}}, true
	case FilterIsNull:
		return bson.E{Key: f.Field, Value: nil}, true
	default:
		return bson.E{}, false
	}
}

func toSlice(value any) bson.A {
	val := reflect.ValueOf(value)

	switch val.Kind() {
	case reflect.Array, reflect.Slice:
		items := make(bson.A, val.Len())
		for idx := range val.Len() {
			items[idx] = val.Index(idx).Interface()
		}

		return items
	default:
		return bson.A{value}
	}
}

type FilterGroup struct {
	Filters  []any
	Operator string
}

// ToBSON renders the group as a query document. AND groups (the default) of
// distinct fields are flattened into one document, anything else is wrapped in
// $and or $or. An empty group matches every document.
func (f *FilterGroup) ToBSON() bson.D {
	clauses := []bson.D{}
	flat := bson.D{}
	seen := map[string]bool{}
	flattenable := true

	for _, filter := range f.Filters {
		switch fill := filter.(type) {
		case Filter:
			if elem, ok := fill.ToBSON(); ok {
				clauses = append(clauses, bson.D{elem})
				flat = append(flat, elem)
				flattenable = flattenable && !seen[elem.Key]
				seen[elem.Key] = true
			}
		case FilterGroup:
			if doc := fill.ToBSON(); len(doc) > 0 {
				clauses = append(clauses, doc)
				flattenable = false
			}
		}
	}

	if len(clauses) == 0 {
		return bson.D{}
	}

	if len(clauses) == 1 {
		return clauses[0]
	}

	operator := "$and"
	if f.Operator == FilterGroupOperatorOr {
		operator = "$or"
	} else if flattenable {
		return flat
	}

	items := make(bson.A, len(clauses))
	for i, clause := range clauses {
		items[i] = clause
	}

	return bson.D{{Key: operator, Value: items}}
}
