package overlay

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/riordanpawley/outcome/internal/ui/motion"
	"github.com/riordanpawley/outcome/internal/ui/styles"
)

// Card chrome: rounded border plus Padding(1, 2)
const (
	chromeX = 3
	chromeY = 2

	minCardWidth = 20
	badgeWidth   = 7
	closeGlyph   = "✕"
	imageGlyph   = "▣"
)

var sparkleGlyphs = []string{"✦", "✧", "✶", "✷", "✸", "✷", "✶", "✧"}

// seg is a run of text on one card row
type seg struct {
	text    string
	fg      lipgloss.Color
	bg      lipgloss.Color
	bold    bool
	under   bool
	opacity float64
	// raw text is already styled and only measured
	raw bool
	// view renders a pre-styled segment against the row background
	view func(bg lipgloss.Color, opacity float64) string
	// fill segments share the row's spare width
	fill   bool
	target Target
}

type align int

const (
	alignCenter align = iota
	alignLeft
	alignRight
)

type line struct {
	segs  []seg
	align align
	// bg overrides the row background, for panels
	bg lipgloss.Color
}

// zone is a clickable span in card content coordinates
type zone struct {
	row    int
	x0, x1 int
	target Target
}

// card is one rendered frame of the overlay content
type card struct {
	view   string
	width  int
	height int
	zones  []zone
}

// painter lays out card rows at a fixed inner width
type painter struct {
	width  int
	frame  motion.Frame
	theme  Theme
	under  lipgloss.Color
	bg     lipgloss.Color
	rows   []string
	zones  []zone
	styles *Styles
}

// renderCard draws the layout at the given frame. focus is the index of the
// focused button.
func renderCard(l Layout, frame motion.Frame, s *Styles, keys KeyMap, cardWidth, focus int) card {
	container := frame.Get(motion.Container)
	backdrop := frame.Get(motion.Backdrop)

	outer := int(math.Round(float64(cardWidth) * container.Scale))
	if outer < minCardWidth {
		outer = minCardWidth
	}

	under := backdropColor(backdrop.Opacity)
	p := &painter{
		width:  outer - 2*chromeX,
		frame:  frame,
		theme:  l.Theme,
		under:  under,
		bg:     styles.Mix(under, styles.Card, container.Opacity),
		styles: s,
	}

	p.closeRow()
	p.badge(l.Sparkle)
	p.blank()
	p.block(motion.Body, p.body(l))
	if l.Detail != nil {
		p.blank()
		p.block(motion.Detail, p.detail(l.Detail))
	}
	p.blank()
	p.block(motion.Actions, p.actions(l.Buttons, focus, keys, l.Detail != nil && l.Detail.Reference != nil))

	border := styles.Fade(styles.Mix(styles.Surface2, l.Theme.Accent, 0.35), under, container.Opacity)
	view := s.Card.
		BorderForeground(border).
		BorderBackground(under).
		Background(p.bg).
		Render(strings.Join(p.rows, "\n"))

	return card{
		view:   view,
		width:  lipgloss.Width(view),
		height: lipgloss.Height(view),
		zones:  p.zones,
	}
}

// backdropColor is the scrim colour at the given opacity
func backdropColor(opacity float64) lipgloss.Color {
	return styles.Mix(styles.Base, styles.Scrim, opacity)
}

// rowBg is the card background of the next row, washed with the theme
// gradient from top to bottom
func (p *painter) rowBg() lipgloss.Color {
	t := float64(len(p.rows)) / 24
	wash := styles.Mix(p.theme.Gradient[0], p.theme.Gradient[1], math.Min(1, t))
	return styles.Tint(wash, p.bg, 0.04*p.frame.Get(motion.Container).Opacity)
}

func (p *painter) blank() {
	p.emit(line{})
}

func (p *painter) emit(ln line) {
	bg := ln.bg
	if bg == "" {
		bg = p.rowBg()
	}

	for i, sg := range ln.segs {
		if sg.view != nil {
			ln.segs[i].text = sg.view(bg, sg.opacity)
			ln.segs[i].raw = true
		}
	}

	used, fills := 0, 0
	for _, sg := range ln.segs {
		if sg.fill {
			fills++
			continue
		}
		used += ansi.StringWidth(sg.text)
	}
	spare := p.width - used
	if spare < 0 {
		spare = 0
	}

	var lead, trail int
	switch {
	case fills > 0:
	case ln.align == alignCenter:
		lead = spare / 2
		trail = spare - lead
	case ln.align == alignRight:
		lead = spare
	default:
		trail = spare
	}

	var b strings.Builder
	pad := lipgloss.NewStyle().Background(bg)
	b.WriteString(pad.Render(strings.Repeat(" ", lead)))
	x := lead
	row := len(p.rows)
	for _, sg := range ln.segs {
		if sg.fill {
			n := spare / fills
			fills--
			spare -= n
			b.WriteString(pad.Render(strings.Repeat(" ", n)))
			x += n
			continue
		}
		w := ansi.StringWidth(sg.text)
		b.WriteString(p.paint(sg, bg))
		if sg.target.Kind != TargetNone {
			p.zones = append(p.zones, zone{row: row, x0: x, x1: x + w, target: sg.target})
		}
		x += w
	}
	b.WriteString(pad.Render(strings.Repeat(" ", trail)))

	out := b.String()
	if x+trail > p.width {
		out = ansi.Truncate(out, p.width, "")
	}
	p.rows = append(p.rows, out)
}

func (p *painter) paint(sg seg, rowBg lipgloss.Color) string {
	if sg.raw {
		return sg.text
	}
	bg := rowBg
	if sg.bg != "" {
		bg = styles.Fade(sg.bg, rowBg, sg.opacity)
	}
	fg := sg.fg
	if fg == "" {
		fg = styles.Text
	}
	st := lipgloss.NewStyle().
		Foreground(styles.Fade(fg, bg, sg.opacity)).
		Background(bg).
		Bold(sg.bold).
		Underline(sg.under)
	return st.Render(sg.text)
}

// block emits lines belonging to one animated element. The block keeps its
// height; a downward offset pushes lines out through its bottom edge.
func (p *painter) block(e motion.Element, lines []line) {
	v := p.frame.Effective(e)
	if v.Hidden() {
		for _, ln := range lines {
			p.emit(line{bg: ln.bg})
		}
		return
	}

	shift := p.frame.Get(e).Rows()
	if shift > len(lines) {
		shift = len(lines)
	}
	for i := 0; i < shift; i++ {
		p.emit(line{bg: lines[i].bg})
	}
	for _, ln := range lines[:len(lines)-shift] {
		for i := range ln.segs {
			ln.segs[i].opacity = v.Opacity
		}
		p.emit(ln)
	}
}

func (p *painter) closeRow() {
	op := p.frame.Get(motion.Container).Opacity
	p.emit(line{
		align: alignRight,
		segs: []seg{{
			text:    closeGlyph,
			fg:      styles.Overlay1,
			opacity: op,
			target:  Target{Kind: TargetClose},
		}},
	})
}

// badge draws the themed icon badge: a three-row gradient tile that grows in
// with the icon's scale, and the optional sparkle to its right
func (p *painter) badge(sparkle bool) {
	icon := p.frame.Effective(motion.Icon)
	spark := p.frame.Effective(motion.Sparkle)

	rows := make([]line, 3)
	for i := range rows {
		rows[i].align = alignCenter
	}

	width := 0
	switch {
	case icon.Hidden() || icon.Scale < 0.3:
	case icon.Scale < 0.75:
		width = 3
	case icon.Scale > 1.1:
		width = badgeWidth + 2
	default:
		width = badgeWidth
	}

	colors := styles.Gradient(p.theme.Gradient[0], p.theme.Gradient[1], 3)
	for i := range rows {
		if width == 0 || (width == 3 && i != 1) {
			rows[i].segs = append(rows[i].segs, seg{text: strings.Repeat(" ", badgeWidth+2)})
			continue
		}
		text := strings.Repeat(" ", width)
		if i == 1 {
			half := (width - 1) / 2
			text = strings.Repeat(" ", half) + p.theme.Icon.Glyph() + strings.Repeat(" ", width-half-1)
		}
		margin := strings.Repeat(" ", (badgeWidth+2-width)/2)
		rows[i].segs = append(rows[i].segs,
			seg{text: margin},
			seg{text: text, fg: styles.Crust, bg: colors[i], bold: true, opacity: icon.Opacity},
			seg{text: margin},
		)
	}

	glyph := " "
	if sparkle && !spark.Hidden() && spark.Scale >= 0.3 {
		turn := math.Mod(spark.Rotate, 360)
		if turn < 0 {
			turn += 360
		}
		glyph = sparkleGlyphs[int(turn/45)%len(sparkleGlyphs)]
	}
	for i := range rows {
		mark := seg{text: " "}
		if i == 0 {
			mark = seg{text: glyph, fg: styles.Highlight, bold: spark.Scale > 1.05, opacity: spark.Opacity}
		}
		rows[i].segs = append([]seg{{text: "  "}}, rows[i].segs...)
		rows[i].segs = append(rows[i].segs, seg{text: " "}, mark)
	}

	for _, ln := range rows {
		p.emit(ln)
	}
}

func (p *painter) wrap(text string) []string {
	if text == "" {
		return nil
	}
	return strings.Split(ansi.Wrap(text, p.width, ""), "\n")
}

func (p *painter) body(l Layout) []line {
	var lines []line
	for _, t := range p.wrap(l.Title) {
		lines = append(lines, line{segs: []seg{{text: t, fg: styles.Text, bold: true}}})
	}
	if l.Title != "" && l.Message != "" {
		lines = append(lines, line{})
	}
	for _, t := range p.wrap(l.Message) {
		lines = append(lines, line{segs: []seg{{text: t, fg: styles.Subtext0}}})
	}
	if len(lines) == 0 {
		lines = append(lines, line{})
	}
	return lines
}

func (p *painter) detail(d *DetailBlock) []line {
	opacity := p.frame.Effective(motion.Detail).Opacity
	panel := styles.Fade(p.theme.Tint, p.bg, opacity)

	lines := []line{{bg: panel}}

	var summary []seg
	summary = append(summary, seg{text: " "})
	if d.Summary.HasImage {
		summary = append(summary, seg{text: imageGlyph, fg: p.theme.Accent}, seg{text: " "})
	}
	if d.Summary.Name != "" {
		summary = append(summary, seg{text: d.Summary.Name, fg: styles.Text, bold: true})
	}
	summary = append(summary, seg{fill: true})
	if d.Summary.Price != "" {
		summary = append(summary, seg{text: d.Summary.Price, fg: p.theme.Accent, bold: true})
	}
	summary = append(summary, seg{text: " "})
	lines = append(lines, line{segs: summary, align: alignLeft, bg: panel})

	if d.Summary.Badge != "" {
		lines = append(lines, line{
			align: alignLeft,
			bg:    panel,
			segs: []seg{
				{text: " "},
				{text: " " + d.Summary.Badge + " ", fg: styles.Subtext1, bg: styles.Surface0},
			},
		})
	}

	if ref := d.Reference; ref != nil {
		lines = append(lines, line{
			align: alignLeft,
			bg:    panel,
			segs: []seg{
				{text: " "},
				{text: "Transaction: ", fg: styles.Subtext0},
				{text: ref.Short, fg: styles.Text},
				{fill: true},
				{text: "[copy]", fg: styles.Primary, target: Target{Kind: TargetCopy}},
				{text: " "},
				{text: "[open]", fg: styles.Primary, target: Target{Kind: TargetOpen}},
				{text: " "},
			},
		})
	}

	return append(lines, line{bg: panel})
}

func (p *painter) actions(buttons []Button, focus int, keys KeyMap, hasReference bool) []line {
	var row []seg
	for i, b := range buttons {
		if i > 0 {
			row = append(row, seg{text: "  "})
		}
		row = append(row, p.button(b, i, i == focus)...)
	}

	bindings := keys.ShortHelp(hasReference)
	footer := seg{view: func(bg lipgloss.Color, opacity float64) string {
		return p.styles.helpView(bindings, bg, opacity, p.width)
	}}

	return []line{
		{segs: row},
		{},
		{segs: []seg{footer}},
	}
}

func (p *painter) button(b Button, index int, focused bool) []seg {
	label := b.Label
	if b.Icon != "" {
		label = b.Icon + " " + label
	}
	text := " " + label + " "
	target := Target{Kind: TargetButton, Index: index}

	switch {
	case b.Gradient:
		runes := []rune(text)
		colors := styles.Gradient(styles.Primary, styles.Accent, len(runes))
		out := make([]seg, len(runes))
		for i, r := range runes {
			out[i] = seg{text: string(r), fg: styles.Crust, bg: colors[i], bold: true, under: focused && r != ' ', target: target}
		}
		return out
	case b.Prominent:
		return []seg{{text: text, fg: styles.Crust, bg: p.theme.Accent, bold: true, under: focused, target: target}}
	default:
		return []seg{{text: text, fg: p.theme.Accent, bg: styles.Surface0, bold: focused, under: focused, target: target}}
	}
}

// place centres the card on a width x height screen, lowered by the
// container's offset
func place(c card, frame motion.Frame, width, height int) placement {
	x := (width - c.width) / 2
	y := (height-c.height)/2 + frame.Get(motion.Container).Rows()
	if x < 0 {
		x = 0
	}
	if y < 0 {
		y = 0
	}
	return placement{card: c, x: x, y: y}
}

// composite draws the placed card over the backdrop. background is the host
// view; when empty the backdrop is a plain scrim.
func composite(pl placement, frame motion.Frame, background string, width, height int) string {
	backdrop := frame.Get(motion.Backdrop)
	base := backdropLines(background, backdropColor(backdrop.Opacity), backdrop.Opacity, width, height)

	for i, ln := range strings.Split(pl.card.view, "\n") {
		row := pl.y + i
		if row >= height {
			break
		}
		target := base[row]
		left := ansi.Truncate(target, pl.x, "")
		right := ansi.TruncateLeft(target, pl.x+ansi.StringWidth(ln), "")
		base[row] = left + ln + right
	}
	return strings.Join(base, "\n")
}

func backdropLines(background string, under lipgloss.Color, opacity float64, width, height int) []string {
	fill := lipgloss.NewStyle().Background(under)
	dim := fill.Foreground(styles.Mix(styles.Subtext0, under, 0.4+opacity*0.4))

	src := strings.Split(background, "\n")
	out := make([]string, height)
	for i := range out {
		if i >= len(src) || background == "" {
			out[i] = fill.Render(strings.Repeat(" ", width))
			continue
		}
		if opacity <= 0.01 {
			out[i] = padTo(src[i], width)
			continue
		}
		plain := ansi.Truncate(ansi.Strip(src[i]), width, "")
		if w := ansi.StringWidth(plain); w < width {
			plain += strings.Repeat(" ", width-w)
		}
		out[i] = dim.Render(plain)
	}
	return out
}

func padTo(s string, width int) string {
	s = ansi.Truncate(s, width, "")
	if w := ansi.StringWidth(s); w < width {
		s += strings.Repeat(" ", width-w)
	}
	return s
}
