package response

import (
	"fmt"
	"strings"

	"dario.lol/cdns/internal/ui"
)

type summaryEntry struct {
	key   string
	value any
}

type Builder struct {
	title          string
	summary        []summaryEntry
	items          []string
	footer         string
	footerIsError  bool
	err            error
	errTitle       string
	noItemsMessage string
}

func New() *Builder {
	return &Builder{}
}

func (b *Builder) Title(title string) *Builder {
	b.title = title
	return b
}

// Summary adds a key/value line to the summary box. Lines render in the
// order they were added.
func (b *Builder) Summary(key string, value any) *Builder {
	b.summary = append(b.summary, summaryEntry{key: key, value: value})
	return b
}

func (b *Builder) AddItem(title, content string) *Builder {
	b.items = append(b.items, ui.Box(content, title))
	return b
}

func (b *Builder) NoItemsMessage(message string) *Builder {
	b.noItemsMessage = message
	return b
}

func (b *Builder) FooterSuccess(format string, a ...any) *Builder {
	b.footer = fmt.Sprintf(format, a...)
	b.footerIsError = false
	return b
}

// FooterError closes the response with a failure line, used when a batch
// finished but some domains did not succeed.
func (b *Builder) FooterError(format string, a ...any) *Builder {
	b.footer = fmt.Sprintf(format, a...)
	b.footerIsError = true
	return b
}

func (b *Builder) Error(title string, err error) *Builder {
	b.errTitle = title
	b.err = err
	return b
}

func (b *Builder) Display() {
	if b.err != nil {
		fmt.Println(ui.ErrorMessage(b.errTitle, b.err))
		return
	}

	if b.title != "" {
		fmt.Println(ui.Title(b.title))
		fmt.Println()
	}

	if len(b.summary) > 0 {
		var summaryContent strings.Builder
		for _, entry := range b.summary {
			summaryContent.WriteString(fmt.Sprintf("%-16s %v\n", entry.key, entry.value))
		}
		fmt.Println(ui.Box(strings.TrimSpace(summaryContent.String()), "Summary"))
		fmt.Println()
	}

	if len(b.items) == 0 {
		if b.noItemsMessage != "" {
			fmt.Println(ui.Warning(b.noItemsMessage))
		}
	} else {
		var itemsContent strings.Builder
		for _, item := range b.items {
			itemsContent.WriteString(item)
			itemsContent.WriteString("\n\n")
		}
		fmt.Print(itemsContent.String())
	}

	if b.footer != "" {
		if b.footerIsError {
			fmt.Println(ui.Error(b.footer))
		} else {
			fmt.Println(ui.Success(b.footer))
		}
	}
}

type ItemContentBuilder struct {
	sb strings.Builder
}

func NewItemContent() *ItemContentBuilder {
	return &ItemContentBuilder{}
}

func (ic *ItemContentBuilder) Add(key, value string) *ItemContentBuilder {
	ic.sb.WriteString(fmt.Sprintf("%-16s %s\n", key, value))
	return ic
}

func (ic *ItemContentBuilder) AddRaw(content string) *ItemContentBuilder {
	ic.sb.WriteString(content)
	ic.sb.WriteString("\n")
	return ic
}

func (ic *ItemContentBuilder) String() string {
	return strings.TrimSpace(ic.sb.String())
}
