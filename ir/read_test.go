package ir

import (
	"bytes"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/signadot/foa-format/go-foa/stream"
)

func TestReadTree(t *testing.T) {
	input := []byte("obj = (\nname = adam\nage = 24\nlist = [\none\ntwo\n]\n)\n")
	roots, err := Parse(input)
	if err != nil {
		t.Fatal(err)
	}
	if len(roots) != 1 {
		t.Fatalf("got %d roots, want 1", len(roots))
	}
	obj := roots[0]
	if obj.Type != ObjectType || obj.Name != "obj" || obj.Line != 1 {
		t.Fatalf("root: %+v", obj)
	}
	if got := obj.Get("name"); got == nil || got.Value != "adam" {
		t.Errorf("name child: %+v", got)
	}
	if got := obj.Get("age"); got == nil || got.Value != "24" {
		t.Errorf("age child: %+v", got)
	}
	list := obj.Get("list")
	if list == nil || list.Type != ArrayType || len(list.Values) != 2 {
		t.Fatalf("list child: %+v", list)
	}
	if list.Values[0].Value != "one" || list.Values[1].Value != "two" {
		t.Errorf("list values: %+v", list.Values)
	}
}

func TestReadMultipleRoots(t *testing.T) {
	roots, err := Parse([]byte("a = 1\n(\n)\nb = 2\n"))
	if err != nil {
		t.Fatal(err)
	}
	if len(roots) != 3 {
		t.Fatalf("got %d roots, want 3", len(roots))
	}
	if roots[1].Type != ObjectType {
		t.Errorf("middle root: %+v", roots[1])
	}
}

func TestReadUnbalanced(t *testing.T) {
	cases := []struct {
		name  string
		input string
	}{
		{"close without open", ")\n"},
		{"mismatched close", "(\n]\n"},
		{"unclosed at eof", "list = [\nx\n"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := Parse([]byte(c.input))
			if !errors.Is(err, ErrUnbalanced) {
				t.Errorf("got %v, want ErrUnbalanced", err)
			}
		})
	}
}

func TestTreeRoundTrip(t *testing.T) {
	root := Object(
		Data("adam").WithName("name"),
		Array(
			Data("x"),
			Data("(parens)"),
		).WithName("tags"),
		Object().WithName("empty"),
	).WithName("doc")

	var buf bytes.Buffer
	if err := Write(stream.NewEncoder(&buf), root); err != nil {
		t.Fatal(err)
	}
	back, err := Parse(buf.Bytes())
	if err != nil {
		t.Fatal(err)
	}
	if len(back) != 1 {
		t.Fatalf("got %d roots", len(back))
	}

	// Lines are source-derived; ignore them when comparing shapes.
	ignoreLines := cmp.FilterPath(func(p cmp.Path) bool {
		return p.Last().String() == ".Line"
	}, cmp.Ignore())
	if diff := cmp.Diff(root, back[0], ignoreLines); diff != "" {
		t.Errorf("tree round trip (-want +got):\n%s", diff)
	}
}

func TestWalk(t *testing.T) {
	root := Object(
		Data("1").WithName("a"),
		Array(Data("2")).WithName("b"),
	)
	var visited int
	root.Walk(func(*Node) bool {
		visited++
		return true
	})
	if visited != 4 {
		t.Errorf("visited %d nodes, want 4", visited)
	}
}
