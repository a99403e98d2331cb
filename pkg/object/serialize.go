package object

import (
	"bytes"
	"fmt"
	"strings"
)

// ---------------------------------------------------------------------------
// Blob
// ---------------------------------------------------------------------------

// MarshalBlob serializes a Blob to raw bytes (identity).
func MarshalBlob(b *Blob) []byte {
	out := make([]byte, len(b.Data))
	copy(out, b.Data)
	return out
}

// ---------------------------------------------------------------------------
// Tree
// ---------------------------------------------------------------------------

// MarshalTree serializes a Tree in entry order. Each entry is one line:
//
//	mode kind hash<TAB>name
//
// where an empty mode defaults to TreeModeFile (or TreeModeDir for subtrees)
// and an empty hash is written as "-".
func MarshalTree(t *Tree) []byte {
	var buf bytes.Buffer
	for _, e := range t.entries {
		fmt.Fprintf(&buf, "%s %s %s\t%s\n", treeModeOrDefault(e), entryKind(e), hashOrDash(e.Hash), e.Name)
	}
	return buf.Bytes()
}

func hashOrDash(h Hash) string {
	if h == "" {
		return "-"
	}
	return string(h)
}

func entryKind(e TreeEntry) ObjectType {
	if e.Kind == "" {
		return TypeBlob
	}
	return e.Kind
}

func treeModeOrDefault(e TreeEntry) string {
	if strings.TrimSpace(e.Mode) != "" {
		return e.Mode
	}
	if e.Kind == TypeTree {
		return TreeModeDir
	}
	return TreeModeFile
}

// ---------------------------------------------------------------------------
// Commit
// ---------------------------------------------------------------------------

// MarshalCommit serializes a Commit:
//
//	tree H
//	parent H     (zero or more, in order)
//	author A
//	timestamp T
//
//	message
func MarshalCommit(c *Commit) []byte {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "tree %s\n", string(c.TreeHash))
	for _, p := range c.Parents {
		fmt.Fprintf(&buf, "parent %s\n", string(p))
	}
	fmt.Fprintf(&buf, "author %s\n", escapeHeader(c.Author))
	fmt.Fprintf(&buf, "timestamp %d\n", c.Timestamp)
	buf.WriteByte('\n')
	buf.WriteString(c.Message)
	return buf.Bytes()
}

// escapeHeader keeps a header value on one line so an author containing a
// newline cannot forge a parent line.
func escapeHeader(s string) string {
	if !strings.ContainsAny(s, "\r\n") {
		return s
	}
	return strings.NewReplacer("\r", `\r`, "\n", `\n`).Replace(s)
}
