package deck

import (
	"fmt"
	"strings"

	"github.com/ukaji3/officegen-go/pkg/officegen/pptx"
)

var in = pptx.Inches

type titled struct {
	Title string
	Desc  string
}

type marketBar struct {
	Year  string
	Value string
	Scale float64
}

type budgetItem struct {
	Label  string
	Amount int
	Green  bool
	Desc   string
}

var (
	influencers = [][]string{
		{"Andrew Huberman", "7.3M subs - Neuroscience-backed routines dominate"},
		{"Ashton Hall", "3M+ followers - Routine videos avg 1M+ views", "+750 Million views on X"},
		{"Ali Abdaal", "6.5M subs - Productivity systems & habit stacking"},
		{"James Clear", "25M+ Atomic Habits sold - Created demand for systems"},
	}

	failReasons = []titled{
		{"No Bridge from Content to Action", "Videos inspire but offer no execution tool"},
		{"Blank Slate Apps", `"What do you want to track?" - Users don't know`},
		{"No Science, No System", "Self-designed habits lack proven structure"},
		{"Streak Anxiety", "One miss = total abandonment"},
	}

	marketBars = []marketBar{
		{"2025", "13.1", 0.25}, {"2026", "14.9", 0.32}, {"2027", "17.1", 0.38},
		{"2028", "", 0.44}, {"2029", "", 0.51}, {"2030", "", 0.57},
		{"2031", "", 0.65}, {"2032", "", 0.74}, {"2033", "", 0.84},
		{"2034", "", 0.94}, {"2035", "50.2", 1.08},
	}

	growthDrivers = []titled{
		{"Rising consumer emphasis on self-improvement, mental well-being, and productivity enhancement", "68% of smartphone users engage with at least one productivity or wellness app"},
		{"Higher willingness to pay", "Premium subscriptions account for 36% of overall habit tracking app downloads"},
		{"Complementary to surge of wearables through integration", "Wearable integration improved user retention by 39%"},
	}

	competitionHeader = []string{"App", "Science-Backed Templates", "Behavioral Insights", "Flexible Streaks", "Cross-Platform"}
	competitionRows   = [][]string{
		{"Streaks", "-", "-", "-", "iOS Only"},
		{"Habitica", "Generic", "Basic Stats", "Rest Inn", "Yes"},
		{"Loop", "-", "Good", "Yes", "Android"},
		{"Habitify", "-", "Mood Only", "-", "Yes"},
		{"Axiom Forge", "Evidence-Based", "Full Analysis", "Flexible", "PWA"},
	}

	budget = []budgetItem{
		{Label: "User Research", Amount: 1200, Green: true},
		{Label: "Contractors", Amount: 1000},
		{Label: "Software & Tools", Amount: 900},
		{Label: "Marketing & Launch", Amount: 800},
		{Label: "Legal & Compliance", Amount: 600},
	}
)

// BudgetTotal is the funding request in dollars.
const BudgetTotal = 4500

func buildPitch(p *pptx.Presentation, t Theme) {
	pitchTitle(NewCanvas(p, t))
	pitchContext(NewCanvas(p, t))
	pitchProblem(NewCanvas(p, t))
	pitchSolution(NewCanvas(p, t))
	pitchMarket(NewCanvas(p, t))
	pitchCompetition(NewCanvas(p, t))
	pitchPrototype(NewCanvas(p, t))
	pitchBusinessModel(NewCanvas(p, t))
	pitchBudget(NewCanvas(p, t))
	pitchRoadmap(NewCanvas(p, t))
	pitchTeam(NewCanvas(p, t))
}

// header draws the corner logo, section label and headline used by every
// content slide.
func (c *Canvas) header(section, headline string) {
	c.CornerLogo()
	c.SectionLabel(section, MarginX, MarginTop)
	c.H1(headline, MarginX, in(0.95), c.ContentW)
}

func pitchTitle(c *Canvas) {
	logo := in(1.1)
	c.Logo((c.W-logo)/2, in(1.0), logo)
	c.TextBox(in(0.5), in(2.1), c.W-in(1.0), in(0.8), "Axiom Forge", c.Theme.Sans(56, c.P.TextPrimary), pptx.AlignCenter)
	c.TextBox(in(2.0), in(3.0), c.W-in(4.0), in(0.35), "PRINCIPLES TURNED INTO PRACTICE",
		c.Theme.Body(20, false, c.P.TextSecondary), pptx.AlignCenter)
	c.Bar(in(2.2), in(3.45), c.W-in(4.4), in(0.45), c.P.AccentGreen)
	c.TextBox(in(2.2), in(3.45), c.W-in(4.4), in(0.45), "ROUTINES THAT TURN INTENT INTO IDENTITY",
		c.Theme.Body(18, true, c.P.BG), pptx.AlignCenter)
	c.SectionLabel("MIT Sandbox Pitch Deck", in(4.3), in(4.25))

	for i, text := range []string{"Pitch Deck for Working Prototype", "January 2026", "Javier Serrano"} {
		box := c.Box(in(2.1+3.0*float64(i)), in(6.3), in(3.3), in(0.45), c.P.TextMuted, c.P.BG, 1)
		box.Text().SetText(text, c.Theme.Body(12, false, c.P.TextSecondary), pptx.AlignCenter)
	}
}

func pitchContext(c *Canvas) {
	c.header("Context", "Routines are the new obsession")

	x, y := MarginX, in(2.0)
	c.StatBlock(x, y, c.ColW, in(1.2), "+50B", "morning routine videos on TikTok", c.P.AccentGreen)

	pillY := y + in(1.35)
	pills := []titled{{"#ThatGirl", "17.4B views"}, {"#nightroutine", "11.4B views"}, {"#dailyroutine", "8B+ views"}}
	for i, pill := range pills {
		box := c.Box(x+in(2.9)*pptx.EMU(i%2), pillY+in(0.55)*pptx.EMU(i/2), in(2.7), in(0.4), c.P.AccentGreen, c.P.BG, 1)
		c.Paragraphs(box, pptx.AlignDefault,
			Line{pill.Title, c.Theme.Body(12, true, c.P.AccentGreen)},
			Line{pill.Desc, c.Theme.Body(11, false, c.P.TextSecondary)},
		)
	}

	chartY := pillY + in(1.3)
	c.Box(x, chartY, c.ColW, in(1.6), c.P.TextPrimary, c.P.BG, 2)
	c.H3("Engagement vs. Other Content", x+in(0.2), chartY+in(0.1), c.ColW-in(0.4), c.P.AccentGreen)
	c.engagementBar(x, chartY+in(0.55), "Routine", 12, in(2.8), c.P.AccentGreen, "6-10x", c.P.AccentGreen)
	c.engagementBar(x, chartY+in(1.05), "General Wellness", 11, in(0.5), c.P.TextMuted, "1x", c.P.TextPrimary)

	rx := c.RightColumn()
	c.H3("Influencers Proving Demand", rx, in(2.0), c.ColW, c.P.AccentGreen)
	for i, inf := range influencers {
		box := c.Slide.AddTextBox(rx, in(2.55)+in(0.85)*pptx.EMU(i), c.ColW, in(0.7))
		lines := []Line{{inf[0], c.Theme.Body(16, true, c.P.TextPrimary)}}
		for _, l := range inf[1:] {
			color := c.P.TextSecondary
			if strings.Contains(l, "views") {
				color = c.P.AccentGreen
			}
			lines = append(lines, Line{l, c.Theme.Body(12, false, color)})
		}
		c.Paragraphs(box, pptx.AlignDefault, lines...)
	}

	c.Box(MarginX, in(6.0), c.ContentW, in(0.65), c.P.AccentGreen, c.P.BG, 2)
	c.TextBox(MarginX, in(6.05), c.ContentW, in(0.5), "Massive audience wants to DO routines, not just WATCH them.",
		c.Theme.Body(18, true, c.P.TextPrimary), pptx.AlignCenter)
	c.sources("Sources: Broadcasting your breakfast: why TikTokers obsess over morning routines - The Guardian; Why We're Obsessed with Other People's Morning Routines - Time")
}

// engagementBar draws a labelled track with a filled portion and a value.
func (c *Canvas) engagementBar(x, y pptx.EMU, label string, labelSize float64, fillW pptx.EMU, fill pptx.Color, value string, valueColor pptx.Color) {
	c.TextBox(x+in(0.2), y, in(1.2), in(0.3), label, c.Theme.Body(labelSize, true, c.P.TextPrimary), pptx.AlignLeft)
	c.Box(x+in(1.6), y, in(2.8), in(0.25), c.P.TextPrimary, c.P.BGSecondary, 1)
	c.Bar(x+in(1.6), y, fillW, in(0.25), fill)
	c.TextBox(x+in(4.6), y, in(0.6), in(0.3), value, c.Theme.Body(12, true, valueColor), pptx.AlignRight)
}

func (c *Canvas) sources(text string) {
	c.TextBox(MarginX, in(6.75), c.ContentW, in(0.3), text, c.Theme.Body(12, false, c.P.TextPrimary), pptx.AlignLeft)
}

func pitchProblem(c *Canvas) {
	c.header("Problem", "But few people can execute them")

	metrics := []titled{
		{"66%", "of Gen Z use digital wellness tools"},
		{"~4%", "Day 30 retention rate in health & fitness apps (lowest category)"},
		{"~90%", "of people quit or fail when trying to form new habits"},
	}
	for i, m := range metrics {
		box := c.Box(MarginX, in(2.0)+in(1.25)*pptx.EMU(i), c.ColW, in(1.1), c.P.AccentGreen, c.P.BG, 2)
		c.Paragraphs(box, pptx.AlignCenter,
			Line{m.Title, c.Theme.Sans(36, c.P.AccentGreen)},
			Line{m.Desc, c.Theme.Body(14, false, c.P.TextSecondary)},
		)
	}

	rx := c.RightColumn()
	c.H3("Why People Fail", rx, in(2.0), c.ColW, c.P.AccentRed)
	for i, r := range failReasons {
		box := c.Slide.AddTextBox(rx, in(2.5)+in(0.75)*pptx.EMU(i), c.ColW, in(0.7))
		c.Paragraphs(box, pptx.AlignDefault,
			Line{r.Title, c.Theme.Body(16, true, c.P.TextPrimary)},
			Line{r.Desc, c.Theme.Body(12, false, c.P.TextSecondary)},
		)
	}

	c.Box(MarginX, in(6.0), c.ContentW, in(0.7), c.P.AccentGreen, c.P.BG, 2)
	c.SectionLabel("The Opportunity", MarginX+in(0.2), in(6.05))
	c.TextBox(MarginX+in(0.2), in(6.32), c.ContentW-in(0.4), in(0.3),
		`Users are truly struggling bridging from "routine inspiration" to "routine execution".`,
		c.Theme.Body(16, true, c.P.TextPrimary), pptx.AlignLeft)
	c.sources("Sources: The $2 trillion global wellness market gets a millennial and Gen Z glow-up - McKinsey & Company; Retention Rates for Mobile Apps by Industry - Plotline; Only 10% of people who try to create a habit achieve their goal - Summa Magazine")
}

func pitchSolution(c *Canvas) {
	c.header("Solution", "Axiom Forge: A Habit System Built on Evidence, Reinforced by Mindset and Insight")

	cards := []struct {
		Title string
		Sub   string
		Items []string
	}{
		{"Smart Routines", "Science-backed templates remove the blank slate.", []string{
			"Morning + evening routines ready from day one",
			"Evidence-based structure for sleep, fitness, focus",
			"Designed for real schedules, not perfection",
		}},
		{"Behavioral Insights", "Patterns that explain success or failure, generated from real data.", []string{
			"Correlation, weekday patterns, and trend signals",
			`Sequence analysis for "what works together"`,
			"Anomalies detection, strength scores and alerts",
		}},
		{"Mindset Pills", "Daily wisdom that reinforces identity.", []string{
			"Daily quote prompts from thought leaders and top performers",
			"Reflection journaling",
			"Rating & archive history",
		}},
	}

	gap := in(0.6)
	w := (c.ContentW - 2*gap) / 3
	h, y := in(4.4), in(2.0)
	for i, card := range cards {
		x := MarginX + (w+gap)*pptx.EMU(i)
		border := c.P.TextPrimary
		if i == 2 {
			border = c.P.AccentPurple
		}
		c.Box(x, y, w, h, border, c.P.BG, 2)
		c.H3(card.Title, x+in(0.2), y+in(0.2), w-in(0.4), c.P.TextPrimary)
		c.Body(card.Sub, x+in(0.2), y+in(0.7), w-in(0.4), in(0.5), 12, c.P.TextSecondary)
		c.Bullets(x+in(0.2), y+in(1.2), w-in(0.4), h-in(1.4), card.Items, 12, c.P.TextPrimary)
	}
}

func pitchMarket(c *Canvas) {
	c.header("Market", "Axiom Forge taps into the rapidly growing Habit Tracking App Market, which is projected to triple within the next 10 years.")

	chartX, chartY := MarginX, in(2.1)
	chartW, chartH := frac(c.ContentW, 0.6), in(4.2)
	c.Box(chartX, chartY, chartW, chartH, c.P.TextPrimary, c.P.BG, 2)
	c.TextBox(chartX+in(0.2), chartY+in(0.1), chartW-in(0.4), in(0.3), "Global Habit Tracking App Market (USD Bn)",
		c.Theme.Body(12, true, c.P.AccentGreen), pptx.AlignLeft)

	areaY, areaH := chartY+in(0.6), chartH-in(1.2)
	barW := (chartW - in(1.0)) / pptx.EMU(len(marketBars))
	forecast := pptx.RGB(100, 120, 0)
	for i, b := range marketBars {
		bx := chartX + in(0.5) + barW*pptx.EMU(i)
		bh := frac(areaH, b.Scale)
		by := areaY + areaH - bh
		if i < 3 {
			c.Bar(bx, by, barW/2, bh, c.P.AccentGreen)
		} else {
			c.Box(bx, by, barW/2, bh, c.P.AccentGreen, forecast, 1)
		}
		if b.Value != "" {
			c.TextBox(bx-in(0.05), by-in(0.25), barW, in(0.2), b.Value, c.Theme.Body(10, true, c.P.AccentGreen), pptx.AlignCenter)
		}
		c.TextBox(bx-in(0.05), areaY+areaH+in(0.1), barW, in(0.2), b.Year, c.Theme.Body(9, false, c.P.TextSecondary), pptx.AlignCenter)
	}

	c.Slide.AddConnector(chartX+in(1.0), chartY+in(0.55), chartX+in(2.6), chartY+in(0.35)).Line(c.P.AccentPurple, 2).EndArrow()
	c.TextBox(chartX+in(0.9), chartY+in(0.2), in(1.5), in(0.3), "CAGR 14.3%", c.Theme.Body(10, true, c.P.AccentPurple), pptx.AlignLeft)
	c.Slide.AddConnector(chartX+in(2.6), chartY+in(0.55), chartX+in(5.6), chartY+in(0.2)).Line(c.P.AccentPurple, 2).EndArrow()
	c.TextBox(chartX+in(2.7), chartY+in(0.05), in(2.5), in(0.3), "CAGR 14.4%", c.Theme.Body(10, true, c.P.AccentPurple), pptx.AlignLeft)

	dx := chartX + chartW + in(0.5)
	dw := c.ContentW - chartW - in(0.5)
	c.Box(dx, chartY, dw, chartH, c.P.TextPrimary, c.P.BG, 2)
	c.H3("Market Growth Drivers", dx+in(0.2), chartY+in(0.2), dw-in(0.4), c.P.AccentGreen)
	y := chartY + in(0.8)
	for _, d := range growthDrivers {
		c.TextBox(dx+in(0.3), y, dw-in(0.6), in(0.5), d.Title, c.Theme.Body(14, true, c.P.TextPrimary), pptx.AlignLeft)
		c.TextBox(dx+in(0.3), y+in(0.45), dw-in(0.6), in(0.4), d.Desc, c.Theme.Body(12, true, c.P.AccentGreen), pptx.AlignLeft)
		y += in(1.2)
	}
	c.sources("Source: Global Habit Tracking App Market Size - Global Growth Insights")
}

func pitchCompetition(c *Canvas) {
	c.header("Competition", "Axiom Forge Is the Only App Combining Science + Mindset + Insights")

	tbl := c.Slide.AddTable(len(competitionRows)+1, len(competitionHeader), MarginX, in(2.1), c.ContentW, in(3.0))
	for col, h := range competitionHeader {
		tbl.Cell(0, col).Fill(c.P.TextPrimary).Text().SetText(h, c.Theme.Body(11, true, c.P.BG), pptx.AlignDefault)
	}
	for r, row := range competitionRows {
		color := c.P.TextPrimary
		if r == len(competitionRows)-1 {
			color = c.P.AccentPurple
		}
		fill := c.P.BG
		if (r+1)%2 == 0 {
			fill = c.P.BGSecondary
		}
		for col, v := range row {
			tbl.Cell(r+1, col).Fill(fill).Text().SetText(v, c.Theme.Body(11, false, color), pptx.AlignDefault)
		}
	}

	c.Box(MarginX, in(5.4), c.ContentW, in(0.9), c.P.AccentGreen, c.P.BG, 2)
	c.SectionLabel("Positioning", MarginX+in(0.2), in(5.45))
	c.TextBox(MarginX+in(0.2), in(5.75), c.ContentW-in(0.4), in(0.4),
		"The only habit tracker that pairs science-backed routines with automated behavioral insight.",
		c.Theme.Body(16, true, c.P.TextPrimary), pptx.AlignLeft)
}

func pitchPrototype(c *Canvas) {
	c.header("Prototype", "A Working Product Validated by Early Users")

	c.H3("Current State", MarginX, in(2.0), c.ColW, c.P.TextPrimary)
	c.Bullets(MarginX, in(2.5), c.ColW, in(3.0), []string{
		"PWA live with Firebase auth + sync",
		"Morning & evening routines with daily check-ins",
		"Dashboard with streaks, heatmap, and completion rates",
		"Smart Insights engine (correlation, trends, anomalies)",
		"Mindset journal with quotes + reflections",
	}, 14, c.P.TextPrimary)

	rx := c.RightColumn()
	c.H3("Validation", rx, in(2.0), c.ColW, c.P.TextPrimary)
	c.Box(rx, in(2.5), c.ColW, in(1.2), c.P.AccentGreen, c.P.BG, 2)
	c.TextBox(rx+in(0.2), in(2.65), c.ColW-in(0.4), in(0.4), "Validated with several early users", c.Theme.Body(16, true, c.P.TextPrimary), pptx.AlignLeft)
	c.TextBox(rx+in(0.2), in(3.05), c.ColW-in(0.4), in(0.4), "Qualitative feedback confirms clarity, motivation, and desire for deeper insights.",
		c.Theme.Body(12, false, c.P.TextSecondary), pptx.AlignLeft)
	c.Box(rx, in(4.0), c.ColW, in(1.1), c.P.TextPrimary, c.P.BG, 2)
	c.TextBox(rx+in(0.2), in(4.15), c.ColW-in(0.4), in(0.4), "Next Validation Goal", c.Theme.Body(14, true, c.P.TextPrimary), pptx.AlignLeft)
	c.TextBox(rx+in(0.2), in(4.55), c.ColW-in(0.4), in(0.4), "Run 40-60 user interviews + beta cohort to confirm retention and pricing.",
		c.Theme.Body(12, false, c.P.TextSecondary), pptx.AlignLeft)
}

func pitchBusinessModel(c *Canvas) {
	c.header("Business Model", "Multiple Revenue Streams from Freemium to Enterprise")

	left := []titled{
		{"FREEMIUM CORE", "Tracking, streaks, routines, basic analytics."},
		{"INSIGHTS PRO", "Correlations, trends, sequences, advanced dashboards."},
		{"COACH LAYER", "AI summaries + habit recommendations."},
	}
	right := []titled{
		{"CONTENT PACKS", "Premium routine templates and expert programs."},
		{"TEAMS / CAMPUS", "Group dashboards for student cohorts or clubs."},
		{"LIFETIME LICENSE", "One-time fee for pro features."},
	}
	borders := []pptx.Color{c.P.TextPrimary, c.P.AccentPurple, c.P.AccentGreen}
	for i, card := range left {
		c.revenueCard(MarginX, i, card, borders[i])
	}
	for i, card := range right {
		c.revenueCard(c.RightColumn(), i, card, c.P.TextPrimary)
	}
}

func (c *Canvas) revenueCard(x pptx.EMU, row int, card titled, border pptx.Color) {
	off := in(1.2) * pptx.EMU(row)
	c.Box(x, in(2.1)+off, c.ColW, in(1.0), border, c.P.BG, 2)
	c.TextBox(x+in(0.2), in(2.2)+off, c.ColW-in(0.4), in(0.4), card.Title, c.Theme.Body(16, true, c.P.TextPrimary), pptx.AlignLeft)
	c.TextBox(x+in(0.2), in(2.6)+off, c.ColW-in(0.4), in(0.4), card.Desc, c.Theme.Body(12, false, c.P.TextSecondary), pptx.AlignLeft)
}

func pitchBudget(c *Canvas) {
	c.header("Funding Request", "$4,500 to Validate, Polish, and Launch to Market")

	c.Box(MarginX, in(2.0), c.ContentW, in(3.6), c.P.TextPrimary, c.P.BG, 2)
	c.TextBox(MarginX+in(0.2), in(2.15), in(2.0), in(0.6), "$4,500", c.Theme.Sans(40, c.P.AccentGreen), pptx.AlignLeft)
	c.TextBox(MarginX+in(2.4), in(2.3), in(7.5), in(0.4), "Aligned with MIT Sandbox reimbursable categories",
		c.Theme.Body(12, false, c.P.TextSecondary), pptx.AlignLeft)

	track := in(6.5)
	for i, item := range budget {
		y := in(3.0) + in(0.5)*pptx.EMU(i)
		c.TextBox(MarginX+in(0.2), y, in(1.8), in(0.3), strings.ToUpper(item.Label), c.Theme.Body(11, true, c.P.TextPrimary), pptx.AlignLeft)
		c.Box(MarginX+in(2.2), y, track, in(0.25), c.P.TextPrimary, c.P.BGSecondary, 1)
		c.Bar(MarginX+in(2.2), y, frac(track, float64(item.Amount)/BudgetTotal), in(0.25), c.budgetColor(item))
		c.TextBox(MarginX+in(9.0), y, in(1.0), in(0.3), fmt.Sprintf("$%d", item.Amount), c.Theme.Body(11, true, c.P.TextPrimary), pptx.AlignRight)
	}

	c.Box(MarginX, in(5.8), c.ContentW, in(0.7), c.P.TextPrimary, c.P.BG, 1)
	c.TextBox(MarginX+in(0.2), in(5.95), c.ContentW-in(0.4), in(0.3),
		"Contractor spend is within the 25% cap. Research incentives and software licenses follow Sandbox reimbursement guidelines.",
		c.Theme.Body(12, false, c.P.TextSecondary), pptx.AlignLeft)
}

func (c *Canvas) budgetColor(item budgetItem) pptx.Color {
	if item.Green {
		return c.P.AccentGreen
	}
	return c.P.AccentPurple
}

func pitchRoadmap(c *Canvas) {
	c.header("Roadmap", "90-Day Sprint from Validation to App Store Launch")

	phases := []struct {
		Num, Title string
		Items      []string
	}{
		{"01", "Validate", []string{"40-60 user interviews", "Beta cohort with retention tracking", "Pricing tests for Insights Pro"}},
		{"02", "Polish", []string{"Refine insights UI", "Performance + onboarding improvements", "Brand + marketing assets"}},
		{"03", "Launch", []string{"App Store packaging", "Public release + press outreach", "Post-launch analytics + iteration"}},
	}
	w := c.ContentW / 3
	y, h := in(2.1), in(3.0)
	for i, ph := range phases {
		x := MarginX + w*pptx.EMU(i)
		border, numColor := c.P.TextPrimary, c.P.TextMuted
		if i == 0 {
			border, numColor = c.P.AccentGreen, c.P.AccentGreen
		}
		c.Box(x, y, w, h, border, c.P.BG, 2)
		c.TextBox(x+in(0.2), y+in(0.1), in(1.0), in(0.5), ph.Num, c.Theme.Sans(36, numColor), pptx.AlignLeft)
		c.TextBox(x+in(0.2), y+in(0.7), w-in(0.4), in(0.3), ph.Title, c.Theme.Body(14, true, c.P.TextPrimary), pptx.AlignLeft)
		c.Bullets(x+in(0.2), y+in(1.1), w-in(0.4), in(1.8), ph.Items, 12, c.P.TextSecondary)
	}

	c.Box(MarginX, in(5.5), in(3.5), in(0.9), c.P.AccentGreen, c.P.BG, 2)
	c.TextBox(MarginX+in(0.2), in(5.6), in(3.1), in(0.4), "Q1 2026", c.Theme.Sans(24, c.P.AccentGreen), pptx.AlignLeft)
	c.TextBox(MarginX+in(0.2), in(6.0), in(3.1), in(0.3), "App Store Launch Target", c.Theme.Body(12, false, c.P.TextSecondary), pptx.AlignLeft)
}

func pitchTeam(c *Canvas) {
	c.header("Team", "The Team Behind Axiom Forge")
	c.Box(MarginX, in(2.2), c.ContentW, in(3.5), c.P.TextPrimary, c.P.BG, 2)
	c.TextBox(MarginX, in(3.7), c.ContentW, in(0.5), "Team information coming soon...", c.Theme.Body(18, false, c.P.TextMuted), pptx.AlignCenter)
}
