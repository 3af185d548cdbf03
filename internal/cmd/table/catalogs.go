package table

import (
	"fmt"
	"strconv"

	"github.com/karonyt/MakeCountryDocument/internal/cmd/emoji"
	"github.com/karonyt/MakeCountryDocument/pkg/catalogs"
)

// descriptionWidth bounds description columns in the narrow views.
const descriptionWidth = 40

// CommandsToTableData converts commands to table format. Wide adds the
// usage line and full description.
func CommandsToTableData(commands []catalogs.Command, wide bool) Data {
	headers := []string{"ID", "Command", "Category", "Permission", "Description"}
	if wide {
		headers = append(headers, "Usage")
	}

	rows := make([][]string, 0, len(commands))
	for _, c := range commands {
		desc := c.Description
		if !wide {
			desc = Truncate(desc, descriptionWidth)
		}
		row := []string{c.ID, c.Name, c.Category, c.Permission.Label(), desc}
		if wide {
			row = append(row, c.Usage)
		}
		rows = append(rows, row)
	}

	return Data{Headers: headers, Rows: rows}
}

// CommandDetailToTableData renders a command reference page as property rows.
func CommandDetailToTableData(d catalogs.CommandDetail, related []catalogs.RelatedCommand) Data {
	rows := [][]string{
		{"Command", d.Name},
		{"Description", d.Description},
		{"Usage", d.Usage},
		{"Category", d.Category},
		{"Permission", d.Permission.Label()},
	}

	for i, p := range d.Parameters {
		req := "optional"
		if p.Required {
			req = "required"
		}
		rows = append(rows, []string{
			fmt.Sprintf("Parameter %d", i+1),
			fmt.Sprintf("%s (%s, %s): %s", p.Name, p.Type, req, p.Description),
		})
	}
	for i, ex := range d.Examples {
		rows = append(rows, []string{
			fmt.Sprintf("Example %d", i+1),
			fmt.Sprintf("%s  # %s", ex.Command, ex.Description),
		})
	}
	for _, note := range d.Notes {
		rows = append(rows, []string{"Note", note})
	}
	for _, r := range related {
		mark := emoji.Success
		if !r.Available {
			mark = emoji.Unknown
		}
		rows = append(rows, []string{"Related", mark + " " + r.Label})
	}

	return Data{Headers: []string{"Property", "Value"}, Rows: rows}
}

// ItemsToTableData converts items to table format.
func ItemsToTableData(items []catalogs.Item, wide bool) Data {
	headers := []string{"ID", "Name", "Category", "Rarity", "Obtain"}
	if wide {
		headers = append(headers, "Effects", "Durability", "Description")
	}

	rows := make([][]string, 0, len(items))
	for _, it := range items {
		row := []string{it.ID, it.Name, it.Category, it.Rarity.Label(), OrPlaceholder(it.ObtainMethod)}
		if wide {
			row = append(row, JoinOrPlaceholder(it.Effects, ", "), OrPlaceholder(it.Durability), it.Description)
		}
		rows = append(rows, row)
	}

	return Data{Headers: headers, Rows: rows}
}

// RecipesToTableData converts recipes to table format.
func RecipesToTableData(recipes []catalogs.Recipe, wide bool) Data {
	headers := []string{"ID", "Name", "Category", "Difficulty", "Result"}
	align := []Align{AlignLeft, AlignLeft, AlignLeft, AlignLeft, AlignRight}
	if wide {
		headers = append(headers, "Ingredients", "Unlock")
		align = append(align, AlignLeft, AlignLeft)
	}

	rows := make([][]string, 0, len(recipes))
	for _, r := range recipes {
		row := []string{r.ID, r.Name, r.Category, r.Difficulty.Label(), formatIngredient(r.Result)}
		if wide {
			ingredients := make([]string, len(r.Ingredients))
			for i, in := range r.Ingredients {
				ingredients[i] = formatIngredient(in)
			}
			row = append(row, JoinOrPlaceholder(ingredients, ", "), OrPlaceholder(r.UnlockCondition))
		}
		rows = append(rows, row)
	}

	return Data{Headers: headers, Rows: rows, ColumnAlignment: align}
}

// GridToTableData renders a crafting grid, one table row per pattern row.
func GridToTableData(grid [][]string) Data {
	width := 0
	for _, row := range grid {
		width = max(width, len(row))
	}

	headers := make([]string, width)
	align := make([]Align, width)
	for i := range width {
		headers[i] = strconv.Itoa(i + 1)
		align[i] = AlignCenter
	}

	rows := make([][]string, len(grid))
	for i, row := range grid {
		cells := make([]string, width)
		for j := range width {
			cells[j] = catalogs.EmptyCell
			if j < len(row) {
				cells[j] = row[j]
			}
		}
		rows[i] = cells
	}

	return Data{Headers: headers, Rows: rows, ColumnAlignment: align}
}

// SystemsToTableData converts nation systems to table format.
func SystemsToTableData(systems []catalogs.System, wide bool) Data {
	headers := []string{"ID", "Name", "Category", "Features"}
	if wide {
		headers = append(headers, "Description")
	}

	rows := make([][]string, 0, len(systems))
	for _, s := range systems {
		row := []string{s.ID, s.Name, s.Category, strconv.Itoa(len(s.Features))}
		if wide {
			row = append(row, s.Description)
		}
		rows = append(rows, row)
	}

	align := []Align{AlignLeft, AlignLeft, AlignLeft, AlignRight, AlignLeft}
	return Data{Headers: headers, Rows: rows, ColumnAlignment: align[:len(headers)]}
}

// LinkGroupsToTableData flattens link groups into rows in group order.
func LinkGroupsToTableData(groups []catalogs.LinkGroup) Data {
	var rows [][]string
	for _, g := range groups {
		for _, l := range g.Items {
			rows = append(rows, []string{g.Category, l.Name, l.URL, Truncate(l.Description, descriptionWidth)})
		}
	}
	return Data{Headers: []string{"Group", "Name", "URL", "Description"}, Rows: rows}
}

// FacetsToTableData lists each facet option with its display label.
func FacetsToTableData(facets []catalogs.Facet) Data {
	var rows [][]string
	for _, f := range facets {
		labels := f.Labels()
		for _, opt := range f.Options() {
			rows = append(rows, []string{string(f.Name), opt, labels[opt]})
		}
	}
	return Data{Headers: []string{"Facet", "Value", "Label"}, Rows: rows}
}

func formatIngredient(in catalogs.Ingredient) string {
	return fmt.Sprintf("%s ×%d", in.Name, in.Amount)
}
