package tree

import (
	"errors"
	"strings"
	"testing"
)

// mustGuess builds a guess leaf or fails the test.
func mustGuess(t *testing.T, animal string) *Node {
	t.Helper()
	g, err := NewGuess(animal)
	if err != nil {
		t.Fatalf("NewGuess(%q) failed: %v", animal, err)
	}
	return g
}

// mustQuestion builds a question node or fails the test.
func mustQuestion(t *testing.T, text string, yes, no *Node) *Node {
	t.Helper()
	q, err := NewQuestion(text, yes, no)
	if err != nil {
		t.Fatalf("NewQuestion(%q) failed: %v", text, err)
	}
	return q
}

func TestNewGuess(t *testing.T) {
	g := mustGuess(t, "  Dog ")

	if g.Kind() != KindGuess {
		t.Errorf("Kind() = %v, want KindGuess", g.Kind())
	}
	if g.Animal() != "dog" {
		t.Errorf("Animal() = %q, want normalized %q", g.Animal(), "dog")
	}
	if !g.IsRoot() {
		t.Error("fresh guess should have no parent")
	}
}

func TestNewGuess_EmptyName(t *testing.T) {
	for _, name := range []string{"", "   ", "\t\n"} {
		if _, err := NewGuess(name); !errors.Is(err, ErrInvalidInput) {
			t.Errorf("NewGuess(%q) error = %v, want ErrInvalidInput", name, err)
		}
	}
}

func TestNewQuestion(t *testing.T) {
	cat := mustGuess(t, "cat")
	dog := mustGuess(t, "dog")
	q := mustQuestion(t, " Does it meow? ", cat, dog)

	if q.Kind() != KindQuestion {
		t.Errorf("Kind() = %v, want KindQuestion", q.Kind())
	}
	if q.Question() != "Does it meow" {
		t.Errorf("Question() = %q, want trailing '?' stripped", q.Question())
	}
	if q.Yes() != cat || q.No() != dog {
		t.Error("children not attached to the expected slots")
	}
	if cat.Parent() != q || dog.Parent() != q {
		t.Error("children's parent links do not point at the question")
	}
}

func TestNewQuestion_Invalid(t *testing.T) {
	cat := mustGuess(t, "cat")
	dog := mustGuess(t, "dog")

	if _, err := NewQuestion("  ? ", cat, dog); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("empty text error = %v, want ErrInvalidInput", err)
	}
	if _, err := NewQuestion("Does it meow", nil, dog); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("nil yes child error = %v, want ErrInvalidInput", err)
	}
	if _, err := NewQuestion("Does it meow", cat, nil); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("nil no child error = %v, want ErrInvalidInput", err)
	}
}

func TestNormalizeQuestion(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Does it meow?", "Does it meow"},
		{"  Does it meow ?  ", "Does it meow"},
		{"Does it meow", "Does it meow"},
		{"?", ""},
		{"   ", ""},
	}
	for _, tt := range tests {
		if got := NormalizeQuestion(tt.in); got != tt.want {
			t.Errorf("NormalizeQuestion(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestReplaceChild_YesSlot(t *testing.T) {
	cat := mustGuess(t, "cat")
	dog := mustGuess(t, "dog")
	q := mustQuestion(t, "Does it meow", cat, dog)
	lion := mustGuess(t, "lion")

	if err := q.ReplaceChild(cat, lion); err != nil {
		t.Fatalf("ReplaceChild failed: %v", err)
	}
	if q.Yes() != lion {
		t.Error("yes slot not replaced")
	}
	if q.No() != dog {
		t.Error("no slot must be untouched")
	}
	if lion.Parent() != q {
		t.Error("replacement's parent link not updated")
	}
}

func TestReplaceChild_NoSlot(t *testing.T) {
	cat := mustGuess(t, "cat")
	dog := mustGuess(t, "dog")
	q := mustQuestion(t, "Does it meow", cat, dog)
	fish := mustGuess(t, "fish")

	if err := q.ReplaceChild(dog, fish); err != nil {
		t.Fatalf("ReplaceChild failed: %v", err)
	}
	if q.No() != fish {
		t.Error("no slot not replaced")
	}
	if q.Yes() != cat {
		t.Error("yes slot must be untouched")
	}
}

func TestReplaceChild_NotAChild(t *testing.T) {
	cat := mustGuess(t, "cat")
	dog := mustGuess(t, "dog")
	q := mustQuestion(t, "Does it meow", cat, dog)
	stranger := mustGuess(t, "wolf")
	repl := mustGuess(t, "lion")

	if err := q.ReplaceChild(stranger, repl); !errors.Is(err, ErrNotAChild) {
		t.Errorf("error = %v, want ErrNotAChild", err)
	}
	if q.Yes() != cat || q.No() != dog {
		t.Error("failed replacement must leave the tree untouched")
	}

	// Identity match, not equality: a distinct node with the same
	// animal name is not the child.
	catTwin := mustGuess(t, "cat")
	if err := q.ReplaceChild(catTwin, repl); !errors.Is(err, ErrNotAChild) {
		t.Errorf("equal-but-distinct node error = %v, want ErrNotAChild", err)
	}
}

func TestReplaceChild_OnGuess(t *testing.T) {
	g := mustGuess(t, "dog")
	repl := mustGuess(t, "cat")
	if err := g.ReplaceChild(g, repl); !errors.Is(err, ErrNotAChild) {
		t.Errorf("error = %v, want ErrNotAChild", err)
	}
}

func TestValidate(t *testing.T) {
	cat := mustGuess(t, "cat")
	dog := mustGuess(t, "dog")
	bird := mustGuess(t, "bird")
	meow := mustQuestion(t, "Does it meow", cat, dog)
	root := mustQuestion(t, "Is it a mammal", meow, bird)

	if err := Validate(root); err != nil {
		t.Errorf("Validate on a well-formed tree failed: %v", err)
	}
}

func TestValidate_Invalid(t *testing.T) {
	if err := Validate(nil); !errors.Is(err, ErrInvalidTree) {
		t.Errorf("nil root error = %v, want ErrInvalidTree", err)
	}

	// Root with a parent link.
	cat := mustGuess(t, "cat")
	dog := mustGuess(t, "dog")
	q := mustQuestion(t, "Does it meow", cat, dog)
	if err := Validate(cat); !errors.Is(err, ErrInvalidTree) {
		t.Errorf("parented root error = %v, want ErrInvalidTree", err)
	}
	_ = q

	// Shared child: the same guess in both slots.
	shared := mustGuess(t, "fish")
	dup := mustQuestion(t, "Does it swim", shared, shared)
	if err := Validate(dup); !errors.Is(err, ErrInvalidTree) {
		t.Errorf("shared child error = %v, want ErrInvalidTree", err)
	}

	// Stale parent link after a raw pointer swap.
	a := mustGuess(t, "ant")
	b := mustGuess(t, "bee")
	c := mustGuess(t, "cow")
	bad := mustQuestion(t, "Does it fly", a, b)
	bad.yes = c // bypasses ReplaceChild, c.parent still nil
	if err := Validate(bad); !errors.Is(err, ErrInvalidTree) {
		t.Errorf("stale parent link error = %v, want ErrInvalidTree", err)
	}
}

func TestStats(t *testing.T) {
	cat := mustGuess(t, "cat")
	dog := mustGuess(t, "dog")
	bird := mustGuess(t, "bird")
	meow := mustQuestion(t, "Does it meow", cat, dog)
	root := mustQuestion(t, "Is it a mammal", meow, bird)

	if got := Count(root); got != 5 {
		t.Errorf("Count = %d, want 5", got)
	}
	if got := Leaves(root); got != 3 {
		t.Errorf("Leaves = %d, want 3", got)
	}
	if got := Depth(root); got != 3 {
		t.Errorf("Depth = %d, want 3", got)
	}
	single := mustGuess(t, "dog")
	if got := Depth(single); got != 1 {
		t.Errorf("Depth of single guess = %d, want 1", got)
	}
}

func TestDump(t *testing.T) {
	cat := mustGuess(t, "cat")
	dog := mustGuess(t, "dog")
	root := mustQuestion(t, "Does it meow", cat, dog)

	var b strings.Builder
	Dump(&b, root)

	want := "Question(Does it meow)\n" +
		"  yes: Guess(cat)\n" +
		"  no:  Guess(dog)\n"
	if b.String() != want {
		t.Errorf("Dump output:\n%s\nwant:\n%s", b.String(), want)
	}
}
