package lexer

import (
	"strconv"
)

// TokenType is the broad class of a token.
//
// DESIGN CHOICE: Keywords and operators are single token types refined by a
// second enum (Keyword, Operator) rather than one token type per spelling.
// A parser asks "is this an operator?" far more often than it asks "is this
// exactly <<=?", and the refinement keeps both questions a single compare.
type TokenType int

const (
	// TokenEOF marks the end of the input. It has a position, so a parser
	// can report "unexpected end of file" at the right place.
	TokenEOF TokenType = iota

	// TokenUnknown is an operator-like sequence with no entry in the
	// operator table.
	TokenUnknown

	// TokenComment is a // or /* */ comment, delimiters stripped.
	TokenComment

	// Literals
	TokenIntegerLiteral
	TokenFloatLiteral
	TokenCharLiteral
	TokenStringLiteral

	// TokenEmptyLiteral is the malformed character literal ''.
	// It is a token, not an error: the parser decides what to do with it.
	TokenEmptyLiteral

	TokenIdentifier
	TokenKeyword
	TokenOperator

	// TokenPunctuator is one of ; , ( ) { } [ ] . and always one character.
	TokenPunctuator
)

var tokenTypeNames = [...]string{
	TokenEOF:            "EOF",
	TokenUnknown:        "Unknown",
	TokenComment:        "Comment",
	TokenIntegerLiteral: "IntegerLiteral",
	TokenFloatLiteral:   "FloatLiteral",
	TokenCharLiteral:    "CharLiteral",
	TokenStringLiteral:  "StringLiteral",
	TokenEmptyLiteral:   "EmptyLiteral",
	TokenIdentifier:     "Identifier",
	TokenKeyword:        "Keyword",
	TokenOperator:       "Operator",
	TokenPunctuator:     "Punctuator",
}

// String returns the name of the token type.
func (tt TokenType) String() string {
	if tt >= 0 && int(tt) < len(tokenTypeNames) {
		return tokenTypeNames[tt]
	}
	return "TokenType(" + strconv.Itoa(int(tt)) + ")"
}

// TokenTypes returns every token type in declaration order.
func TokenTypes() []TokenType {
	types := make([]TokenType, len(tokenTypeNames))
	for i := range types {
		types[i] = TokenType(i)
	}
	return types
}

// IsLiteral returns true if the token type is a literal value.
func (tt TokenType) IsLiteral() bool {
	return tt >= TokenIntegerLiteral && tt <= TokenEmptyLiteral
}

// Keyword is one of the 32 reserved words of C.
type Keyword int

const (
	KeywordNone Keyword = iota
	KeywordAuto
	KeywordBreak
	KeywordCase
	KeywordChar
	KeywordConst
	KeywordContinue
	KeywordDefault
	KeywordDo
	KeywordDouble
	KeywordElse
	KeywordEnum
	KeywordExtern
	KeywordFloat
	KeywordFor
	KeywordGoto
	KeywordIf
	KeywordInt
	KeywordLong
	KeywordRegister
	KeywordReturn
	KeywordShort
	KeywordSigned
	KeywordSizeof
	KeywordStatic
	KeywordStruct
	KeywordSwitch
	KeywordTypedef
	KeywordUnion
	KeywordUnsigned
	KeywordVoid
	KeywordVolatile
	KeywordWhile
)

var keywordNames = [...]string{
	KeywordNone:     "None",
	KeywordAuto:     "Auto",
	KeywordBreak:    "Break",
	KeywordCase:     "Case",
	KeywordChar:     "Char",
	KeywordConst:    "Const",
	KeywordContinue: "Continue",
	KeywordDefault:  "Default",
	KeywordDo:       "Do",
	KeywordDouble:   "Double",
	KeywordElse:     "Else",
	KeywordEnum:     "Enum",
	KeywordExtern:   "Extern",
	KeywordFloat:    "Float",
	KeywordFor:      "For",
	KeywordGoto:     "Goto",
	KeywordIf:       "If",
	KeywordInt:      "Int",
	KeywordLong:     "Long",
	KeywordRegister: "Register",
	KeywordReturn:   "Return",
	KeywordShort:    "Short",
	KeywordSigned:   "Signed",
	KeywordSizeof:   "Sizeof",
	KeywordStatic:   "Static",
	KeywordStruct:   "Struct",
	KeywordSwitch:   "Switch",
	KeywordTypedef:  "Typedef",
	KeywordUnion:    "Union",
	KeywordUnsigned: "Unsigned",
	KeywordVoid:     "Void",
	KeywordVolatile: "Volatile",
	KeywordWhile:    "While",
}

func (k Keyword) String() string {
	if k >= 0 && int(k) < len(keywordNames) {
		return keywordNames[k]
	}
	return "Keyword(" + strconv.Itoa(int(k)) + ")"
}

// keywords maps keyword spellings to their Keyword.
//
// The map is initialized once and never modified (effectively const).
var keywords = map[string]Keyword{
	"auto":     KeywordAuto,
	"break":    KeywordBreak,
	"case":     KeywordCase,
	"char":     KeywordChar,
	"const":    KeywordConst,
	"continue": KeywordContinue,
	"default":  KeywordDefault,
	"do":       KeywordDo,
	"double":   KeywordDouble,
	"else":     KeywordElse,
	"enum":     KeywordEnum,
	"extern":   KeywordExtern,
	"float":    KeywordFloat,
	"for":      KeywordFor,
	"goto":     KeywordGoto,
	"if":       KeywordIf,
	"int":      KeywordInt,
	"long":     KeywordLong,
	"register": KeywordRegister,
	"return":   KeywordReturn,
	"short":    KeywordShort,
	"signed":   KeywordSigned,
	"sizeof":   KeywordSizeof,
	"static":   KeywordStatic,
	"struct":   KeywordStruct,
	"switch":   KeywordSwitch,
	"typedef":  KeywordTypedef,
	"union":    KeywordUnion,
	"unsigned": KeywordUnsigned,
	"void":     KeywordVoid,
	"volatile": KeywordVolatile,
	"while":    KeywordWhile,
}

// LookupKeyword reports whether ident is a reserved word. The match is
// exact and case-sensitive: "Int" is an identifier.
func LookupKeyword(ident string) (Keyword, bool) {
	k, ok := keywords[ident]
	return k, ok
}

// Operator is one of the arithmetic, bitwise, logical, comparison or
// assignment operators of C.
type Operator int

const (
	OperatorNone Operator = iota

	// Arithmetic
	Add
	Subtract
	MultiplyOrPointer
	Divide
	Modulo
	Increment
	Decrement

	// Bitwise
	BitwiseAndOrDereference
	BitwiseOr
	BitwiseXor
	BitwiseNot
	LeftShift
	RightShift

	// Logical
	LogicalAnd
	LogicalOr
	LogicalNot

	// Comparison
	Equal
	NotEqual
	LessThan
	GreaterThan
	LessThanOrEqual
	GreaterThanOrEqual

	// Assignment
	Assign
	AddAssign
	SubtractAssign
	MultiplyAssign
	DivideAssign
	ModuloAssign
	BitwiseAndAssign
	BitwiseOrAssign
	BitwiseXorAssign
	LeftShiftAssign
	RightShiftAssign
)

var operatorNames = [...]string{
	OperatorNone:            "None",
	Add:                     "Add",
	Subtract:                "Subtract",
	MultiplyOrPointer:       "MultiplyOrPointer",
	Divide:                  "Divide",
	Modulo:                  "Modulo",
	Increment:               "Increment",
	Decrement:               "Decrement",
	BitwiseAndOrDereference: "BitwiseAndOrDereference",
	BitwiseOr:               "BitwiseOr",
	BitwiseXor:              "BitwiseXor",
	BitwiseNot:              "BitwiseNot",
	LeftShift:               "LeftShift",
	RightShift:              "RightShift",
	LogicalAnd:              "LogicalAnd",
	LogicalOr:               "LogicalOr",
	LogicalNot:              "LogicalNot",
	Equal:                   "Equal",
	NotEqual:                "NotEqual",
	LessThan:                "LessThan",
	GreaterThan:             "GreaterThan",
	LessThanOrEqual:         "LessThanOrEqual",
	GreaterThanOrEqual:      "GreaterThanOrEqual",
	Assign:                  "Assign",
	AddAssign:               "AddAssign",
	SubtractAssign:          "SubtractAssign",
	MultiplyAssign:          "MultiplyAssign",
	DivideAssign:            "DivideAssign",
	ModuloAssign:            "ModuloAssign",
	BitwiseAndAssign:        "BitwiseAndAssign",
	BitwiseOrAssign:         "BitwiseOrAssign",
	BitwiseXorAssign:        "BitwiseXorAssign",
	LeftShiftAssign:         "LeftShiftAssign",
	RightShiftAssign:        "RightShiftAssign",
}

func (o Operator) String() string {
	if o >= 0 && int(o) < len(operatorNames) {
		return operatorNames[o]
	}
	return "Operator(" + strconv.Itoa(int(o)) + ")"
}

// operators maps operator spellings to their Operator. No spelling is
// longer than maxOperatorLen.
var operators = map[string]Operator{
	"+":   Add,
	"-":   Subtract,
	"*":   MultiplyOrPointer,
	"/":   Divide,
	"%":   Modulo,
	"++":  Increment,
	"--":  Decrement,
	"&":   BitwiseAndOrDereference,
	"|":   BitwiseOr,
	"^":   BitwiseXor,
	"~":   BitwiseNot,
	"<<":  LeftShift,
	">>":  RightShift,
	"&&":  LogicalAnd,
	"||":  LogicalOr,
	"!":   LogicalNot,
	"==":  Equal,
	"!=":  NotEqual,
	"<":   LessThan,
	">":   GreaterThan,
	"<=":  LessThanOrEqual,
	">=":  GreaterThanOrEqual,
	"=":   Assign,
	"+=":  AddAssign,
	"-=":  SubtractAssign,
	"*=":  MultiplyAssign,
	"/=":  DivideAssign,
	"%=":  ModuloAssign,
	"&=":  BitwiseAndAssign,
	"|=":  BitwiseOrAssign,
	"^=":  BitwiseXorAssign,
	"<<=": LeftShiftAssign,
	">>=": RightShiftAssign,
}

const maxOperatorLen = 3

// LookupOperator returns the operator spelled exactly as s.
func LookupOperator(s string) (Operator, bool) {
	op, ok := operators[s]
	return op, ok
}

// ValueKind says which field of a Value is populated.
type ValueKind int

const (
	ValueEmpty ValueKind = iota
	ValueText
	ValueInteger
	ValueFloat
	ValueChar
)

// Value is the payload of a token. Exactly one field matching Kind is set;
// which one is fixed by the scanner that produced the token.
type Value struct {
	Kind  ValueKind
	Text  string
	Int   int64
	Float float64
	Char  rune
}

// TextValue returns a Value holding s.
func TextValue(s string) Value { return Value{Kind: ValueText, Text: s} }

// IntegerValue returns a Value holding n.
func IntegerValue(n int64) Value { return Value{Kind: ValueInteger, Int: n} }

// FloatValue returns a Value holding f.
func FloatValue(f float64) Value { return Value{Kind: ValueFloat, Float: f} }

// CharValue returns a Value holding c.
func CharValue(c rune) Value { return Value{Kind: ValueChar, Char: c} }

// EmptyValue returns the Value carried by EOF and empty literals.
func EmptyValue() Value { return Value{} }

// String formats the populated field: text and characters are quoted,
// numbers are printed as Go would print them.
func (v Value) String() string {
	switch v.Kind {
	case ValueText:
		return strconv.Quote(v.Text)
	case ValueInteger:
		return strconv.FormatInt(v.Int, 10)
	case ValueFloat:
		return strconv.FormatFloat(v.Float, 'g', -1, 64)
	case ValueChar:
		return strconv.QuoteRune(v.Char)
	default:
		return "Empty"
	}
}

// Token represents a single lexical token.
//
// DESIGN CHOICE: Token is a value type (not pointer) because:
// 1. Tokens are small and cheap to copy
// 2. No need for sharing/mutation after creation
// 3. Avoids GC pressure (no allocations for token values)
type Token struct {
	Type TokenType

	// Keyword is set when Type is TokenKeyword.
	Keyword Keyword

	// Operator is set when Type is TokenOperator.
	Operator Operator

	Value Value

	// Position is where the token's first character appears.
	Position Position

	// End is the position just past the token's last character.
	End Position
}

// Kind returns the refined kind name: "Keyword(Int)", "Operator(Assign)",
// "Punctuator(;)" or just the token type name.
func (t Token) Kind() string {
	switch t.Type {
	case TokenKeyword:
		return "Keyword(" + t.Keyword.String() + ")"
	case TokenOperator:
		return "Operator(" + t.Operator.String() + ")"
	case TokenPunctuator:
		return "Punctuator(" + string(t.Value.Char) + ")"
	default:
		return t.Type.String()
	}
}

// String returns a human-readable representation of the token.
// Format: "KIND VALUE at row:col"
// Example: `Identifier "foo" at 0:5`
func (t Token) String() string {
	return t.Kind() + " " + t.Value.String() + " at " + t.Position.String()
}

// Length returns the number of source bytes the token spans.
func (t Token) Length() int {
	return t.End.Offset - t.Position.Offset
}

// Span returns the source span covered by this token.
func (t Token) Span() Span {
	return Span{Start: t.Position, End: t.End}
}
