package ui

import (
	"fmt"
	"strings"

	"github.com/rivo/uniseg"

	"github.com/dshills/dotwriter/internal/app"
	"github.com/dshills/dotwriter/internal/braille/cell"
)

// Role selects how a frame line is styled.
type Role uint8

const (
	RolePlain Role = iota
	RoleTitle
	RoleBraille
	RoleText
	RoleCell
	RoleStatus
	RoleMessage
	RoleError
	RoleHelp
	RoleReference
	RoleReferenceActive
)

// Line is one row of the screen.
type Line struct {
	Text string
	Role Role
}

// Frame lays out v as screen lines no wider than width. A width of zero
// or less disables truncation.
func Frame(v app.View, width int) []Line {
	var lines []Line
	add := func(role Role, format string, args ...any) {
		lines = append(lines, Line{Text: truncate(fmt.Sprintf(format, args...), width), Role: role})
	}

	add(RoleTitle, "dotwriter  %s  |  %s  [%s]", v.Mode.Name, v.Layout.Name, v.Layout.Hint())
	add(RolePlain, "")

	for i, l := range strings.Split(v.Braille, "\n") {
		label := "Braille: "
		if i > 0 {
			label = "         "
		}
		add(RoleBraille, "%s%s", label, l)
	}
	for i, l := range strings.Split(v.Text, "\n") {
		label := "Text:    "
		if i > 0 {
			label = "         "
		}
		add(RoleText, "%s%s", label, l)
	}
	add(RolePlain, "")

	add(RoleCell, "Cell:    %s", cellLine(v))
	add(RoleStatus, "Status:  %s", statusLine(v))

	switch {
	case v.Message.Error:
		add(RoleError, "%s", v.Message.Text)
	default:
		add(RoleMessage, "%s", v.Message.Text)
	}
	add(RolePlain, "")

	for _, row := range helpRows(v.Bindings, width) {
		add(RoleHelp, "%s", row)
	}

	if len(v.Reference) > 0 {
		add(RolePlain, "")
		add(RoleReference, "Reference")
		active := ""
		if len(v.Preview.Dots) > 0 {
			active = v.Preview.Glyph
		}
		for _, row := range referenceRows(v.Reference, active, width) {
			role := RoleReference
			if row.active {
				role = RoleReferenceActive
			}
			add(role, "%s", row.text)
		}
	}
	return lines
}

// referenceItemWidth is the column width of one chart entry, including
// the separating space.
const referenceItemWidth = 8

type referenceRow struct {
	text   string
	active bool
}

// referenceRows packs the cell chart into rows that fit width. The entry
// whose glyph is active is bracketed and its row marked.
func referenceRows(ref []app.ReferenceEntry, active string, width int) []referenceRow {
	perRow := (len(ref) + 1) / 2
	if width > 0 {
		perRow = (width + 1) / referenceItemWidth
	}
	if perRow < 1 {
		perRow = 1
	}

	var rows []referenceRow
	for start := 0; start < len(ref); start += perRow {
		end := min(start+perRow, len(ref))
		var row referenceRow
		items := make([]string, 0, end-start)
		for _, r := range ref[start:end] {
			left, right := " ", " "
			if active != "" && r.Glyph == active {
				left, right = "[", "]"
				row.active = true
			}
			items = append(items, left+r.Glyph+" "+orBlank(r.Letter)+" "+orBlank(r.Digit)+right)
		}
		row.text = strings.TrimRight(strings.Join(items, " "), " ")
		rows = append(rows, row)
	}
	return rows
}

func orBlank(s string) string {
	if s == "" {
		return " "
	}
	return s
}

func cellLine(v app.View) string {
	p := v.Preview
	var b strings.Builder
	if p.Pending {
		fmt.Fprintf(&b, "%s + ", p.PendingGlyph)
	}
	if len(p.Dots) == 0 {
		b.WriteString("(no dots)")
		return b.String()
	}

	fmt.Fprintf(&b, "%s dots %s", p.Glyph, cell.DotString(p.Code))

	switch {
	case p.Indicator != "":
		fmt.Fprintf(&b, " = %s", p.Indicator)
	case p.Text != "":
		fmt.Fprintf(&b, " = %s", p.Text)
	}
	return b.String()
}

func statusLine(v app.View) string {
	flags := v.StatusLine
	if flags == "" {
		flags = "-"
	}
	return fmt.Sprintf("%s  |  %d cells, %d characters", flags, v.BrailleLen, v.TextLen)
}

// helpRows packs bindings into rows that fit width.
func helpRows(bindings []app.Binding, width int) []string {
	var (
		rows []string
		row  strings.Builder
	)
	for _, bnd := range bindings {
		item := bnd.Key + " " + strings.ReplaceAll(bnd.Action, "_", " ")
		if row.Len() > 0 && width > 0 && uniseg.StringWidth(row.String())+2+uniseg.StringWidth(item) > width {
			rows = append(rows, row.String())
			row.Reset()
		}
		if row.Len() > 0 {
			row.WriteString("  ")
		}
		row.WriteString(item)
	}
	if row.Len() > 0 {
		rows = append(rows, row.String())
	}
	return rows
}

// truncate cuts s to at most width display columns.
func truncate(s string, width int) string {
	if width <= 0 || uniseg.StringWidth(s) <= width {
		return s
	}
	var (
		b     strings.Builder
		used  int
		state = -1
	)
	rest := s
	for rest != "" {
		var (
			cluster string
			w       int
		)
		cluster, rest, w, state = uniseg.FirstGraphemeClusterInString(rest, state)
		if used+w > width {
			break
		}
		b.WriteString(cluster)
		used += w
	}
	return b.String()
}
