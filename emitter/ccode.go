/*
File    : slcc/emitter/ccode.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

CCode accumulates the C translation unit as it is generated: a body of
statements/definitions (content), a set of #include lines (imports), and a
typedef block synthesized on demand for every compound type the emitter
encounters (string/array/function aliases). Each compound type is hashed to
a stable id so the same Array(i32,4) or (i32,i32):i32 never produces the
same typedef line twice, no matter how many times it's referenced.
*/
package emitter

import (
	"fmt"
	"hash/fnv"
	"sort"
	"strings"

	"github.com/akashmaji946/slcc/langtype"
)

// CCode is the emitter's single piece of mutable state, threaded by pointer
// through every generation routine.
type CCode struct {
	content  strings.Builder
	imports  map[string]struct{}
	typedefs []string
	typedefSeen map[string]struct{}
	typesMap map[uint64]string
}

// NewCCode returns an empty CCode ready for generation.
func NewCCode() *CCode {
	return &CCode{
		imports:     make(map[string]struct{}),
		typedefSeen: make(map[string]struct{}),
		typesMap:    make(map[uint64]string),
	}
}

// Content assembles the final translation unit: imports (sorted, so output
// is deterministic), then the typedef block in first-seen order, then the
// generated body.
func (c *CCode) Content() string {
	imports := make([]string, 0, len(c.imports))
	for imp := range c.imports {
		imports = append(imports, imp)
	}
	sort.Strings(imports)

	var out strings.Builder
	out.WriteString(strings.Join(imports, "\n"))
	out.WriteString("\n")
	for _, td := range c.typedefs {
		out.WriteString(td)
	}
	out.WriteString(c.content.String())
	return out.String()
}

// Push appends raw C text to the content buffer.
func (c *CCode) Push(code string) {
	c.content.WriteString(code)
}

// Pop removes the last byte of the content buffer -- used by main's
// definition generation to splice out its own closing brace
// before forcing `return 0;}` onto the end.
func (c *CCode) Pop() {
	s := c.content.String()
	if len(s) == 0 {
		return
	}
	c.content.Reset()
	c.content.WriteString(s[:len(s)-1])
}

// PushImport records a `#include` line. Inserting into a map, then sorting
// at Content time, keeps the same semantics as the original's BTreeSet:
// every include appears once, in a deterministic order.
func (c *CCode) PushImport(imp string) {
	c.imports[imp] = struct{}{}
}

func hashType(t langtype.Type) uint64 {
	h := fnv.New64a()
	h.Write([]byte(t.String()))
	return h.Sum64()
}

var primitiveCType = map[langtype.Primitive]string{
	langtype.Void:   "void",
	langtype.Char:   "unsigned char",
	langtype.Bool:   "unsigned char",
	langtype.U8:     "unsigned char",
	langtype.I8:     "signed char",
	langtype.U16:    "unsigned short int",
	langtype.I16:    "signed short int",
	langtype.U32:    "unsigned int",
	langtype.I32:    "signed int",
	langtype.U64:    "unsigned long long int",
	langtype.I64:    "signed long long int",
	langtype.F32:    "float",
	langtype.F64:    "double",
	langtype.Any:    "void*",
}

// GetType returns the C spelling of t, synthesizing and caching a typedef
// the first time a compound type (string, array, function) is seen.
func (c *CCode) GetType(t langtype.Type) string {
	hash := hashType(t)
	if alias, ok := c.typesMap[hash]; ok {
		return alias
	}

	switch {
	case t.IsPrimitive() && t.Primitive() == langtype.String:
		c.addTypedef("typedef char __string[256];")
		c.typesMap[hash] = "__string"

	case t.IsFunction():
		retC := c.GetType(t.Return())
		params := t.Params()
		paramCs := make([]string, len(params))
		for i, p := range params {
			paramCs[i] = c.GetType(p)
		}
		alias := fmt.Sprintf("__fn_%d", hash)
		c.addTypedef(fmt.Sprintf("typedef %s (*%s)(%s);", retC, alias, strings.Join(paramCs, ",")))
		c.typesMap[hash] = alias

	case t.IsArray():
		root, dims := arrayRootAndDimensions(t)
		rootC := c.GetType(root)
		var dimParts strings.Builder
		for _, d := range dims {
			fmt.Fprintf(&dimParts, "[%d]", d)
		}
		alias := fmt.Sprintf("__array_%d", hash)
		c.addTypedef(fmt.Sprintf("typedef %s (*%s)%s;", rootC, alias, dimParts.String()))
		c.typesMap[hash] = alias

	case t.IsRef():
		inner := c.GetType(t.Inner())
		c.typesMap[hash] = inner + "*"

	default:
		c.typesMap[hash] = primitiveCType[t.Primitive()]
	}

	return c.typesMap[hash]
}

func (c *CCode) addTypedef(line string) {
	if _, seen := c.typedefSeen[line]; seen {
		return
	}
	c.typedefSeen[line] = struct{}{}
	c.typedefs = append(c.typedefs, line)
}

// arrayRootAndDimensions flattens a possibly nested Array type into its
// scalar root element type and the list of dimensions from outermost to
// innermost, matching the C multi-dimensional-array-pointer typedef shape.
func arrayRootAndDimensions(t langtype.Type) (langtype.Type, []int) {
	var dims []int
	cur := t
	for cur.IsArray() {
		dims = append(dims, cur.Size())
		cur = cur.Elem()
	}
	return cur, dims
}
