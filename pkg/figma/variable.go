package figma

import "encoding/json"

// VariableResolvedType is the type a variable value resolves to once
// aliases and expressions are evaluated.
type VariableResolvedType string

const (
	ResolvedBoolean VariableResolvedType = "BOOLEAN"
	ResolvedFloat   VariableResolvedType = "FLOAT"
	ResolvedString  VariableResolvedType = "STRING"
	ResolvedColor   VariableResolvedType = "COLOR"
)

// VariableDataType is the "type" discriminant of a VariableValue.
type VariableDataType string

const (
	DataBoolean       VariableDataType = "BOOLEAN"
	DataFloat         VariableDataType = "FLOAT"
	DataString        VariableDataType = "STRING"
	DataColor         VariableDataType = "COLOR"
	DataVariableAlias VariableDataType = "VARIABLE_ALIAS"
	DataExpression    VariableDataType = "EXPRESSION"
)

// VariableData is a variable value as it appears in actions and
// expressions. Its "type" and "value" keys are the envelope of Value,
// laid out directly in the VariableData object:
//
//	{"resolvedType": "FLOAT", "type": "FLOAT", "value": 4}
type VariableData struct {
	ResolvedType VariableResolvedType `json:"resolvedType"`
	Value        VariableValue        `figma:"flatten"`
}

// MarshalJSON writes the resolved type next to the value envelope.
func (d VariableData) MarshalJSON() ([]byte, error) {
	if d.Value == nil {
		return nil, &EncodeError{Path: "value", Detail: "nil VariableValue"}
	}
	head, err := json.Marshal(struct {
		ResolvedType VariableResolvedType `json:"resolvedType"`
	}{d.ResolvedType})
	if err != nil {
		return nil, err
	}
	value, err := json.Marshal(d.Value)
	if err != nil {
		return nil, err
	}
	return mergeObjects(head, value)
}

// UnmarshalJSON decodes strictly, see Unmarshal.
func (d *VariableData) UnmarshalJSON(data []byte) error {
	return Unmarshal(data, d)
}

// VariableValue is the payload of a VariableData.
type VariableValue interface {
	isVariableValue()
}

type (
	// BoolValue is a literal boolean.
	BoolValue bool
	// FloatValue is a literal number.
	FloatValue float64
	// StringValue is a literal string.
	StringValue string
	// ColorValue is a literal color.
	ColorValue Color
)

// VariableAlias refers to another variable by id.
type VariableAlias struct {
	ID string `json:"id"`
}

// ExpressionFunction is the operator of an Expression.
type ExpressionFunction string

const (
	FuncAddition           ExpressionFunction = "ADDITION"
	FuncSubtraction        ExpressionFunction = "SUBTRACTION"
	FuncMultiplication     ExpressionFunction = "MULTIPLICATION"
	FuncDivision           ExpressionFunction = "DIVISION"
	FuncEquals             ExpressionFunction = "EQUALS"
	FuncNotEqual           ExpressionFunction = "NOT_EQUAL"
	FuncLessThan           ExpressionFunction = "LESS_THAN"
	FuncLessThanOrEqual    ExpressionFunction = "LESS_THAN_OR_EQUAL"
	FuncGreaterThan        ExpressionFunction = "GREATER_THAN"
	FuncGreaterThanOrEqual ExpressionFunction = "GREATER_THAN_OR_EQUAL"
	FuncAnd                ExpressionFunction = "AND"
	FuncOr                 ExpressionFunction = "OR"
	FuncVarModeLookup      ExpressionFunction = "VAR_MODE_LOOKUP"
	FuncNegate             ExpressionFunction = "NEGATE"
	FuncNot                ExpressionFunction = "NOT"
)

// Expression applies ExpressionFunction to its arguments, each of which
// may itself be an expression.
type Expression struct {
	ExpressionFunction  ExpressionFunction `json:"expressionFunction"`
	ExpressionArguments []VariableData     `json:"expressionArguments"`
}

func (BoolValue) isVariableValue()     {}
func (FloatValue) isVariableValue()    {}
func (StringValue) isVariableValue()   {}
func (ColorValue) isVariableValue()    {}
func (VariableAlias) isVariableValue() {}
func (Expression) isVariableValue()    {}

func (v BoolValue) MarshalJSON() ([]byte, error)   { return marshalVariant(v, bool(v)) }
func (v FloatValue) MarshalJSON() ([]byte, error)  { return marshalVariant(v, float64(v)) }
func (v StringValue) MarshalJSON() ([]byte, error) { return marshalVariant(v, string(v)) }
func (v ColorValue) MarshalJSON() ([]byte, error)  { return marshalVariant(v, Color(v)) }

func (v VariableAlias) MarshalJSON() ([]byte, error) {
	type plain VariableAlias
	return marshalVariant(v, plain(v))
}

func (v Expression) MarshalJSON() ([]byte, error) {
	type plain Expression
	return marshalVariant(v, plain(v))
}

func init() {
	registerEnum(ResolvedBoolean, ResolvedFloat, ResolvedString, ResolvedColor)
	registerEnum(DataBoolean, DataFloat, DataString, DataColor, DataVariableAlias, DataExpression)
	registerEnum(
		FuncAddition, FuncSubtraction, FuncMultiplication, FuncDivision,
		FuncEquals, FuncNotEqual, FuncLessThan, FuncLessThanOrEqual, FuncGreaterThan, FuncGreaterThanOrEqual,
		FuncAnd, FuncOr, FuncVarModeLookup, FuncNegate, FuncNot,
	)

	registerUnion[VariableValue](Envelope, "type", "value",
		variant[BoolValue](string(DataBoolean)),
		variant[FloatValue](string(DataFloat)),
		variant[StringValue](string(DataString)),
		variant[ColorValue](string(DataColor)),
		variant[VariableAlias](string(DataVariableAlias)),
		variant[Expression](string(DataExpression)),
	)
}
