package cli

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/aretw0/sortscope/pkg/domain"
)

var categoryTitles = map[domain.Category]string{
	domain.CategoryElementary:    "Elementary",
	domain.CategoryDivideConquer: "Divide & Conquer",
	domain.CategoryLinear:        "Linear Time",
	domain.CategoryVariants:      "Variants",
	domain.CategoryExotic:        "Exotic",
}

// PrintCatalog writes the descriptors grouped by category.
func PrintCatalog(w io.Writer, descs []domain.Descriptor) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for i, cat := range domain.Categories {
		if i > 0 {
			fmt.Fprintln(tw)
		}
		fmt.Fprintf(tw, "%s\n", categoryTitles[cat])
		for _, d := range descs {
			if d.Category != cat {
				continue
			}
			fmt.Fprintf(tw, "  %s\t%s\t%s\t%s\n", d.ID, d.Name, d.TimeComplexity, d.SpaceComplexity)
		}
	}
	return tw.Flush()
}

// DescribeMarkdown renders a descriptor as a markdown document.
func DescribeMarkdown(d domain.Descriptor) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "# %s\n\n", d.Name)
	fmt.Fprintf(&sb, "%s\n\n", d.Description)
	sb.WriteString("| Id | Category | Time | Space |\n")
	sb.WriteString("|----|----------|------|-------|\n")
	fmt.Fprintf(&sb, "| `%s` | %s | %s | %s |\n", d.ID, categoryTitles[d.Category], d.TimeComplexity, d.SpaceComplexity)
	return sb.String()
}
