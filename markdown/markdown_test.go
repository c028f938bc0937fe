package markdown

import (
	"bytes"
	"context"
	"strings"
	"testing"
)

func TestRenderHeadings(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"# Heading 1", `<h1 class="text-4xl font-bold mb-2 dark:text-white">Heading 1</h1>`},
		{"## Heading 2", `<h2 class="text-3xl font-bold mb-2 dark:text-white">Heading 2</h2>`},
		{"### Heading 3", `<h3 class="text-2xl font-bold mb-2 dark:text-white">Heading 3</h3>`},
		{"#### Heading 4", `<h4 class="text-xl font-bold mb-2 dark:text-white">Heading 4</h4>`},
		{"##### Heading 5", `<h5 class="text-lg font-bold mb-2 dark:text-white">Heading 5</h5>`},
		{"###### Heading 6", `<h6 class="text-base font-bold mb-2 dark:text-white">Heading 6</h6>`},
	}
	for _, tt := range tests {
		got := Render(tt.input)
		if !strings.Contains(got, tt.expected) {
			t.Errorf("Render(%q) = %q, want it to contain %q", tt.input, got, tt.expected)
		}
	}
}

func TestRenderParagraph(t *testing.T) {
	got := Render("Hello world")
	want := `<p class="mb-4 dark:text-white">Hello world</p>`
	if !strings.Contains(got, want) {
		t.Errorf("Render paragraph = %q, want it to contain %q", got, want)
	}
}

func TestRenderEveryParagraphStyled(t *testing.T) {
	got := Render("one\n\ntwo\n\n> three")
	if n := strings.Count(got, `<p class="mb-4 dark:text-white">`); n != 3 {
		t.Errorf("styled paragraphs = %d, want 3 in %q", n, got)
	}
	if strings.Contains(got, "<p>") {
		t.Errorf("found unstyled paragraph in %q", got)
	}
}

func TestRenderTable(t *testing.T) {
	input := "| Name | Value |\n|------|-------|\n| foo | bar |"
	got := Render(input)
	for _, want := range []string{
		`<table class="mb-4 gray-400 dark:text-white dark:gray-800">`,
		`<th class="bg-gray-300 dark:bg-gray-900">Name</th>`,
		`<td class="bg-gray-100 dark:bg-gray-700">foo</td>`,
	} {
		if !strings.Contains(got, want) {
			t.Errorf("Render table = %q, want it to contain %q", got, want)
		}
	}
}

func TestRenderCodeBlock(t *testing.T) {
	got := Render("```go\nfmt.Println(1)\n```")
	if !strings.Contains(got, `<pre class="mb-4 bg-gray-200 dark:text-white dark:bg-gray-900">`) {
		t.Errorf("code block should be styled: %q", got)
	}
	if !strings.Contains(got, `class="language-go"`) {
		t.Errorf("code block should keep its language class: %q", got)
	}
	if !strings.Contains(got, "fmt.Println(1)") {
		t.Errorf("code block missing content: %q", got)
	}
}

func TestRenderLinks(t *testing.T) {
	got := Render("see [example](https://example.com) and [local](/about/)")
	if n := strings.Count(got, `class="text-blue-400 dark:text-orange-600"`); n != 2 {
		t.Errorf("styled links = %d, want 2 in %q", n, got)
	}
	if !strings.Contains(got, `href="https://example.com"`) {
		t.Errorf("link href lost: %q", got)
	}
}

func TestRenderNestedLinkInTableCell(t *testing.T) {
	got := Render("| a |\n|---|\n| [x](/x/) |")
	if !strings.Contains(got, `class="text-blue-400 dark:text-orange-600"`) {
		t.Errorf("link inside a table cell should be styled: %q", got)
	}
}

func TestRenderStrikethrough(t *testing.T) {
	got := Render("~~gone~~")
	if !strings.Contains(got, "<del>gone</del>") {
		t.Errorf("Render strikethrough = %q", got)
	}
}

func TestRenderTaskList(t *testing.T) {
	got := Render("- [x] done\n- [ ] todo")
	if strings.Count(got, `type="checkbox"`) != 2 {
		t.Errorf("task list should render two checkboxes: %q", got)
	}
	if !strings.Contains(got, "done") || !strings.Contains(got, "todo") {
		t.Errorf("task list lost its items: %q", got)
	}
}

func TestRenderFootnote(t *testing.T) {
	got := Render("Claim[^1]\n\n[^1]: Source text")
	if !strings.Contains(got, "<sup") {
		t.Errorf("footnote reference missing: %q", got)
	}
	if !strings.Contains(got, "Source text") {
		t.Errorf("footnote body missing: %q", got)
	}
}

func TestRenderDropsRawScript(t *testing.T) {
	got := Render("<script>alert(1)</script>\n\ntext")
	if strings.Contains(got, "<script") {
		t.Errorf("raw script should not survive: %q", got)
	}
}

func TestRenderInlineHTML(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"x<sup>2</sup>", `<p class="mb-4 dark:text-white">x<sup>2</sup></p>`},
		{"H<sub>2</sub>O", `<p class="mb-4 dark:text-white">H<sub>2</sub>O</p>`},
		{"a <strong>bold</strong> word", `<p class="mb-4 dark:text-white">a <strong>bold</strong> word</p>`},
	}
	for _, tt := range tests {
		if got := Render(tt.input); !strings.Contains(got, tt.expected) {
			t.Errorf("Render(%q) = %q, want it to contain %q", tt.input, got, tt.expected)
		}
	}
}

func TestRenderDropsUnsafeAttributes(t *testing.T) {
	got := Render(`<a href="javascript:alert(1)" onclick="x()">click</a>`)
	if strings.Contains(got, "javascript:") || strings.Contains(got, "onclick") {
		t.Errorf("unsafe attributes should not survive: %q", got)
	}
	if !strings.Contains(got, "click") {
		t.Errorf("link text should survive: %q", got)
	}
}

func TestRenderMalformed(t *testing.T) {
	tests := []struct {
		input string
		keep  string
	}{
		{"", ""},
		{"```\nunclosed code", "unclosed code"},
		{"| a | b |\n|---|", "a"},
		{"[dangling](", "dangling"},
		{"**never closed", "never closed"},
		{"> > > deep\n>", "deep"},
		{"[^missing]", "missing"},
	}
	for _, tt := range tests {
		got := Render(tt.input)
		if got != Render(tt.input) {
			t.Errorf("Render(%q) not deterministic", tt.input)
		}
		if !strings.Contains(got, tt.keep) {
			t.Errorf("Render(%q) = %q, lost %q", tt.input, got, tt.keep)
		}
	}
}

func TestRenderDeterministic(t *testing.T) {
	input := "# T\n\npara [l](/x/)\n\n| a | b |\n|---|---|\n| 1 | 2 |\n\n```\ncode\n```\n\n- [x] task\n\nnote[^n]\n\n[^n]: n"
	first := Render(input)
	for i := 0; i < 5; i++ {
		if got := Render(input); got != first {
			t.Fatalf("render %d differs:\n%q\n%q", i, got, first)
		}
	}
}

func TestInjectClassesReplacesExisting(t *testing.T) {
	got := InjectClasses(`<p class="old" id="x">hi</p>`)
	want := `<p class="mb-4 dark:text-white" id="x">hi</p>`
	if got != want {
		t.Errorf("InjectClasses = %q, want %q", got, want)
	}
}

func TestInjectClassesLeavesOtherTags(t *testing.T) {
	in := `<ul><li>item</li></ul>`
	if got := InjectClasses(in); got != in {
		t.Errorf("InjectClasses(%q) = %q", in, got)
	}
}

func TestMarkdownComponent(t *testing.T) {
	var buf bytes.Buffer
	if err := Markdown("# Hi").Render(context.Background(), &buf); err != nil {
		t.Fatalf("Render component: %v", err)
	}
	if !strings.Contains(buf.String(), "<h1 class=") {
		t.Errorf("component output = %q", buf.String())
	}
}
