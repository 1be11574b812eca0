// Package pdf writes minimal multi-page PDF files: one full-bleed image
// XObject per page. It carries its own small raw object model; dictionaries
// serialize with sorted keys so output is deterministic.
package pdf

import (
	"bytes"
	"fmt"
	"sort"
	"strconv"
)

// Object is any serializable PDF value.
type Object interface{ serialize(buf *bytes.Buffer) }

// ObjectRef identifies an indirect object.
type ObjectRef struct {
	Num int
	Gen int
}

// Name is a PDF name (serialized with a leading slash).
type Name string

func (n Name) serialize(buf *bytes.Buffer) {
	buf.WriteByte('/')
	buf.WriteString(string(n))
}

// Integer is a PDF integer number.
type Integer int64

func (i Integer) serialize(buf *bytes.Buffer) {
	buf.WriteString(strconv.FormatInt(int64(i), 10))
}

// Real is a PDF real number.
type Real float64

func (r Real) serialize(buf *bytes.Buffer) {
	buf.WriteString(strconv.FormatFloat(float64(r), 'f', 4, 64))
}

// Ref is an indirect reference value.
type Ref ObjectRef

func (r Ref) serialize(buf *bytes.Buffer) {
	fmt.Fprintf(buf, "%d %d R", r.Num, r.Gen)
}

// Array is an ordered sequence of objects.
type Array []Object

func (a Array) serialize(buf *bytes.Buffer) {
	buf.WriteByte('[')
	for i, item := range a {
		if i > 0 {
			buf.WriteByte(' ')
		}
		item.serialize(buf)
	}
	buf.WriteByte(']')
}

// Dict is a PDF dictionary.
type Dict map[string]Object

func (d Dict) serialize(buf *bytes.Buffer) {
	buf.WriteString("<<")
	keys := make([]string, 0, len(d))
	for k := range d {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		buf.WriteString("/" + k + " ")
		d[k].serialize(buf)
	}
	buf.WriteString(">>")
}

// Stream pairs a dictionary with raw data. Length is filled in on serialize.
type Stream struct {
	Dict Dict
	Data []byte
}

func (s *Stream) serialize(buf *bytes.Buffer) {
	d := Dict{}
	for k, v := range s.Dict {
		d[k] = v
	}
	d["Length"] = Integer(len(s.Data))
	d.serialize(buf)
	buf.WriteString("stream\n")
	buf.Write(s.Data)
	buf.WriteString("\nendstream")
}

// serializeObject wraps an object in its "N G obj ... endobj" frame.
func serializeObject(ref ObjectRef, obj Object) []byte {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "%d %d obj\n", ref.Num, ref.Gen)
	obj.serialize(&buf)
	buf.WriteString("\nendobj\n")
	return buf.Bytes()
}
