package docx

import (
	"strings"
	"unicode/utf8"

	"github.com/rs/zerolog"
	"github.com/unidoc/unioffice"
	"github.com/unidoc/unioffice/color"
	"github.com/unidoc/unioffice/common"
	"github.com/unidoc/unioffice/document"
	"github.com/unidoc/unioffice/measurement"
	"github.com/unidoc/unioffice/schema/soo/wml"

	"smartcv/internal/types"
)

// MinSummaryRunes is the shortest trimmed summary worth rendering as prose.
// Shorter summaries are suppressed rather than padded.
const MinSummaryRunes = 40

// SummaryRenderable reports whether a summary is long enough to appear in
// the document.
func SummaryRenderable(summary string) bool {
	return utf8.RuneCountInString(strings.TrimSpace(summary)) >= MinSummaryRunes
}

// sectionHeadings maps each record language to its fixed section titles.
var sectionHeadings = map[types.Language]struct {
	Skills     string
	Experience string
	Education  string
}{
	types.LangFrench: {
		Skills:     "COMPETENCES PROFESSIONNELLES",
		Experience: "EXPÉRIENCES PROFESSIONNELLES",
		Education:  "FORMATIONS ET DIPLÔMES",
	},
	types.LangEnglish: {
		Skills:     "PROFESSIONAL SKILLS",
		Experience: "PROFESSIONAL EXPERIENCE",
		Education:  "EDUCATION",
	},
}

// Composer builds styled Word documents from filtered CV records. It holds
// no per-render state; one Composer may serve concurrent renders.
type Composer struct {
	log zerolog.Logger
}

// NewComposer creates a Composer that logs asset warnings to the given logger.
func NewComposer(log zerolog.Logger) *Composer {
	return &Composer{log: log}
}

// Compose builds the complete document for a record. The record is expected
// to be normalized and filtered already; blanks that slip through render as
// absent sections rather than failing. Section order is fixed: header,
// summary, skills, experience, education. groups optionally carries
// pre-grouped skills from the grouping oracle; when empty, skills render as
// one ungrouped bullet list.
func (c *Composer) Compose(rec types.CVRecord, groups []types.SkillGroup) (*document.Document, error) {
	doc := document.New()

	section := doc.BodySection()
	section.SetPageSizeAndOrientation(210*measurement.Millimeter, 297*measurement.Millimeter, wml.ST_PageOrientationPortrait)
	section.SetPageMargins(
		pageMarginTop, pageMarginRight, pageMarginBottom, pageMarginLeft,
		0.5*measurement.Centimeter, 0.5*measurement.Centimeter, 0,
	)

	headings, ok := sectionHeadings[rec.Language]
	if !ok {
		headings = sectionHeadings[types.LangFrench]
	}

	if err := c.addHeader(doc, rec); err != nil {
		return nil, err
	}
	if err := c.addSummary(doc, rec.PersonalInfo.Summary); err != nil {
		return nil, err
	}
	if err := c.addSkills(doc, headings.Skills, rec.Skills, groups); err != nil {
		return nil, err
	}

	experienceRows := make([]entryRow, 0, len(rec.Experience))
	for _, e := range rec.Experience {
		if !e.Renderable() {
			continue
		}
		experienceRows = append(experienceRows, entryRow{
			Period: e.Period, Left: e.Company, Title: e.Role, Details: e.Details,
		})
	}
	if err := c.addEntryTable(doc, headings.Experience, experienceRows); err != nil {
		return nil, err
	}

	educationRows := make([]entryRow, 0, len(rec.Education))
	for _, e := range rec.Education {
		if !e.Renderable() {
			continue
		}
		educationRows = append(educationRows, entryRow{
			Period: e.Period, Left: e.School, Title: e.Degree, Details: e.Details,
		})
	}
	if err := c.addEntryTable(doc, headings.Education, educationRows); err != nil {
		return nil, err
	}

	return doc, nil
}

// entryRow is one row of an experience or education table: the period and
// secondary name on the left, the bolded title and detail bullets on the right.
type entryRow struct {
	Period  string
	Left    string
	Title   string
	Details []string
}

// addHeader emits the two-column identity block: photo on the left, name,
// uppercased title and labeled contact lines on the right.
func (c *Composer) addHeader(doc *document.Document, rec types.CVRecord) error {
	table := doc.AddTable()
	table.Properties().SetWidth(headerLeftWidth + headerRightWidth)
	table.Properties().SetLayout(wml.ST_TblLayoutTypeFixed)
	table.Properties().Borders().SetAll(wml.ST_BorderNone, color.Auto, 0)

	row := table.AddRow()

	left := row.AddCell()
	left.Properties().SetWidth(headerLeftWidth)
	logoPara := left.AddParagraph()
	logoPara.Properties().SetAlignment(wml.ST_JcCenter)
	c.insertImage(doc, logoPara, rec.PersonalInfo.PhotoPath)

	right := row.AddCell()
	right.Properties().SetWidth(headerRightWidth)

	if err := addStyledParagraph(right.AddParagraph(), StyleNameHeading, rec.PersonalInfo.Name); err != nil {
		return err
	}
	if title := strings.TrimSpace(rec.PersonalInfo.Title); title != "" {
		if err := addStyledParagraph(right.AddParagraph(), StyleTitleLine, strings.ToUpper(title)); err != nil {
			return err
		}
	}

	phone := strings.TrimSpace(rec.PersonalInfo.Phone)
	email := strings.TrimSpace(rec.PersonalInfo.Email)
	if phone != "" {
		if err := addStyledParagraph(right.AddParagraph(), StyleContactLine, "Tel: "+phone); err != nil {
			return err
		}
	}
	if email != "" {
		if err := addStyledParagraph(right.AddParagraph(), StyleContactLine, "Email: "+email); err != nil {
			return err
		}
	}

	// Thin accent rule under the whole header block.
	sep := doc.AddParagraph()
	sep.Properties().Spacing().SetAfter(2 * measurement.Point)
	setBottomBorder(sep, separatorBorderWidth)
	return nil
}

// insertImage places the photo into the paragraph. Loading is best effort;
// a missing or unreadable file is logged and skipped.
func (c *Composer) insertImage(doc *document.Document, para document.Paragraph, path string) {
	if strings.TrimSpace(path) == "" {
		return
	}

	img, err := common.ImageFromFile(path)
	if err != nil {
		c.warnAsset(path, err)
		return
	}
	ref, err := doc.AddImage(img)
	if err != nil {
		c.warnAsset(path, err)
		return
	}
	inline, err := para.AddRun().AddDrawingInline(ref)
	if err != nil {
		c.warnAsset(path, err)
		return
	}
	inline.SetSize(logoWidth, logoHeight)
}

func (c *Composer) warnAsset(path string, err error) {
	warn := &AssetLoadWarning{Path: path, Cause: err}
	c.log.Warn().Str("path", path).Err(err).Msg(warn.Error())
}

// addSummary emits the profile paragraph when the trimmed summary is long
// enough to be real prose.
func (c *Composer) addSummary(doc *document.Document, summary string) error {
	if !SummaryRenderable(summary) {
		return nil
	}
	trimmed := strings.TrimSpace(summary)

	st, err := Lookup(StyleSummaryText)
	if err != nil {
		return err
	}

	para := doc.AddParagraph()
	para.Properties().SetAlignment(wml.ST_JcBoth)
	applyParagraphStyle(para, st)
	addStyledRun(para, st, trimmed)
	return nil
}

// addSkills emits the skills section. Grouped skills render one paragraph
// per category; ungrouped skills render as a bullet list.
func (c *Composer) addSkills(doc *document.Document, heading string, skills []string, groups []types.SkillGroup) error {
	if len(skills) == 0 && len(groups) == 0 {
		return nil
	}

	if err := c.addSectionHeading(doc, heading); err != nil {
		return err
	}

	st, err := Lookup(StyleBodyText)
	if err != nil {
		return err
	}

	if len(groups) > 0 {
		for _, g := range groups {
			para := doc.AddParagraph()
			applyParagraphStyle(para, st)
			label := addStyledRun(para, st, g.Label+": ")
			label.Properties().SetBold(true)
			addStyledRun(para, st, g.Skills)
		}
		return nil
	}

	nd := newBulletDefinition(doc)
	for _, skill := range skills {
		para := doc.AddParagraph()
		para.SetNumberingLevel(0)
		para.SetNumberingDefinition(nd)
		applyParagraphStyle(para, st)
		addStyledRun(para, st, skill)
	}
	return nil
}

// addEntryTable emits one two-column borderless table with a row per entry.
// The section, heading included, is suppressed when no entries survive.
func (c *Composer) addEntryTable(doc *document.Document, heading string, rows []entryRow) error {
	if len(rows) == 0 {
		return nil
	}

	if err := c.addSectionHeading(doc, heading); err != nil {
		return err
	}

	periodStyle, err := Lookup(StylePeriodLabel)
	if err != nil {
		return err
	}
	bodyStyle, err := Lookup(StyleBodyText)
	if err != nil {
		return err
	}

	table := doc.AddTable()
	table.Properties().SetWidth(periodColWidth + bodyColWidth)
	table.Properties().SetLayout(wml.ST_TblLayoutTypeFixed)
	table.Properties().Borders().SetAll(wml.ST_BorderNone, color.Auto, 0)

	nd := newBulletDefinition(doc)

	for _, row := range rows {
		r := table.AddRow()

		left := r.AddCell()
		left.Properties().SetWidth(periodColWidth)
		if strings.TrimSpace(row.Period) != "" {
			para := left.AddParagraph()
			applyParagraphStyle(para, periodStyle)
			addStyledRun(para, periodStyle, row.Period)
		}
		if strings.TrimSpace(row.Left) != "" {
			para := left.AddParagraph()
			applyParagraphStyle(para, bodyStyle)
			addStyledRun(para, bodyStyle, row.Left)
		}

		right := r.AddCell()
		right.Properties().SetWidth(bodyColWidth)
		if strings.TrimSpace(row.Title) != "" {
			para := right.AddParagraph()
			applyParagraphStyle(para, bodyStyle)
			title := addStyledRun(para, bodyStyle, row.Title)
			title.Properties().SetBold(true)
		}
		for _, detail := range row.Details {
			if strings.TrimSpace(detail) == "" {
				continue
			}
			para := right.AddParagraph()
			para.SetNumberingLevel(0)
			para.SetNumberingDefinition(nd)
			applyParagraphStyle(para, bodyStyle)
			addStyledRun(para, bodyStyle, detail)
		}
	}

	return nil
}

// addSectionHeading emits a section title with the accent bottom border.
func (c *Composer) addSectionHeading(doc *document.Document, text string) error {
	st, err := Lookup(StyleSectionHeading)
	if err != nil {
		return err
	}

	para := doc.AddParagraph()
	applyParagraphStyle(para, st)
	addStyledRun(para, st, text)
	setBottomBorder(para, headingBorderWidth)
	return nil
}

// addStyledParagraph styles an already created paragraph per the role and
// fills it with one text run.
func addStyledParagraph(para document.Paragraph, role StyleRole, text string) error {
	st, err := Lookup(role)
	if err != nil {
		return err
	}
	applyParagraphStyle(para, st)
	addStyledRun(para, st, text)
	return nil
}

// applyParagraphStyle sets the paragraph-level attributes of a style.
func applyParagraphStyle(para document.Paragraph, st Style) {
	if st.SpaceBefore != 0 {
		para.Properties().Spacing().SetBefore(st.SpaceBefore)
	}
	if st.SpaceAfter != 0 {
		para.Properties().Spacing().SetAfter(st.SpaceAfter)
	}
	if st.LineSpacing != 0 {
		para.Properties().Spacing().SetLineSpacing(st.LineSpacing, wml.ST_LineSpacingRuleAuto)
	}
	if st.LeftIndent != 0 {
		setLeftIndent(para, st.LeftIndent)
	}
}

// addStyledRun appends a text run carrying the character-level attributes of
// a style and returns it for further tweaks (section-local bolding).
func addStyledRun(para document.Paragraph, st Style, text string) document.Run {
	run := para.AddRun()
	run.AddText(text)
	rp := run.Properties()
	if st.Font != "" {
		rp.SetFontFamily(st.Font)
	}
	if st.Size != 0 {
		rp.SetSize(st.Size)
	}
	rp.SetColor(st.Color)
	if st.Bold {
		rp.SetBold(true)
	}
	if st.Italic {
		rp.SetItalic(true)
	}
	return run
}

// setLeftIndent sets the paragraph left indent through the raw properties.
func setLeftIndent(para document.Paragraph, d measurement.Distance) {
	pPr := para.Properties().X()
	if pPr.Ind == nil {
		pPr.Ind = wml.NewCT_Ind()
	}
	pPr.Ind.LeftAttr = &wml.ST_SignedTwipsMeasure{
		Int64: unioffice.Int64(int64(d / measurement.Twips)),
	}
}

// setBottomBorder draws the accent rule under a paragraph. Width is given in
// the style's distance units and stored as eighths of a point.
func setBottomBorder(para document.Paragraph, width measurement.Distance) {
	pPr := para.Properties().X()
	if pPr.PBdr == nil {
		pPr.PBdr = wml.NewCT_PBdr()
	}
	border := wml.NewCT_Border()
	border.ValAttr = wml.ST_BorderSingle
	border.SzAttr = unioffice.Uint64(uint64(width / measurement.Point * 8))
	border.ColorAttr = &wml.ST_HexColor{ST_HexColorRGB: unioffice.String(accentHex)}
	pPr.PBdr.Bottom = border
}

// newBulletDefinition registers a plain round-bullet numbering definition.
func newBulletDefinition(doc *document.Document) document.NumberingDefinition {
	nd := doc.Numbering.AddDefinition()
	lvl := nd.AddLevel()
	lvl.SetFormat(wml.ST_NumberFormatBullet)
	lvl.SetAlignment(wml.ST_JcLeft)
	lvl.SetText("•")
	lvl.Properties().SetLeftIndent(bulletIndent)
	return nd
}
