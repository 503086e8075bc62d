package workbook

import "fmt"

// Problem 2: call-center operator scheduling.
var (
	problem2Hours = []string{"7-8AM", "8-9AM", "9-10AM", "10-11AM", "11-12PM", "12-1PM",
		"1-2PM", "2-3PM", "3-4PM", "4-5PM", "5-6PM", "6-7PM"}
	problem2Requirements = []int{2, 3, 5, 8, 7, 5, 6, 7, 5, 5, 4, 4}
	problem2Rates        = []int{25, 25, 18, 18, 18, 18, 18, 18, 18, 18, 25, 25}
	problem2Operators    = []string{"A", "B", "C", "D", "E", "F", "G", "H", "I", "J"}
)

var problem2Instructions = []string{
	"1. Objective: Minimize E53 (Total Cost)",
	"2. Variables:",
	"   - Working hours: B12:M21 (120 cells)",
	"   - Lunch: B28:D37 (30 cells)",
	"",
	"3. Constraints:",
	"   - Each operator works 7 hrs: N12:N21 = 7",
	"   - Each operator 1 lunch: E28:E37 = 1",
	"   - Min coverage: B22:M22 >= B23:M23",
	"   - Can't work during lunch:",
	"     For each operator row i (12-21):",
	"     F_i + B_(i+16) <= 1  (11-12PM)",
	"     G_i + C_(i+16) <= 1  (12-1PM)",
	"     H_i + D_(i+16) <= 1  (1-2PM)",
	"   - Span constraints:",
	"     B12+L12 <= 1, B12+M12 <= 1 (Op A)",
	"     Similar for all operators",
	"   - All variables binary {0,1}",
	"",
	"4. Method: Evolutionary/Branch-and-bound",
}

// Problem2SheetName is the only sheet of the problem 2 workbook.
const Problem2SheetName = "Part B - Basic Model"

// BuildProblem2 lays out the operator scheduling model.
func BuildProblem2(b *Book) {
	ws := b.Sheet(Problem2SheetName)

	ws.Title("A1", "Problem 2 Part (b): Call Center Operator Scheduling", "N1")
	ws.Section("A3", "PARAMETERS", FillHeaderBlue, 12, "N3")

	ws.Set("A5", "Hour")
	ws.Bold("A5")
	for i, hour := range problem2Hours {
		cell := fmt.Sprintf("%s5", Col(i+2))
		ws.Set(cell, hour)
		ws.Style(Style{Bold: true, Size: 9, Align: "center", Rotation: 90}, cell)
	}

	ws.Set("A6", "Min Required")
	ws.Bold("A6")
	for i, req := range problem2Requirements {
		ws.Set(fmt.Sprintf("%s6", Col(i+2)), req)
	}

	ws.Set("A7", "Pay Rate ($/hr)")
	ws.Bold("A7")
	for i, rate := range problem2Rates {
		cell := fmt.Sprintf("%s7", Col(i+2))
		ws.Set(cell, rate)
		if rate == 25 {
			ws.Fill(FillExpensive, cell)
		} else {
			ws.Fill(FillCheap, cell)
		}
	}

	// Working hours y[o,h].
	ws.Section("A9", "DECISION VARIABLES: WORKING HOURS (y_o,h)", FillHeaderBlue, 12, "O9")
	ws.Set("A11", "Operator")
	ws.Set("N11", "Total")
	ws.Set("O11", "Required")
	ws.Bold("A11", "N11", "O11")
	for i := range problem2Hours {
		cell := fmt.Sprintf("%s11", Col(i+2))
		ws.Set(cell, i+1)
		ws.Style(Style{Bold: true, Size: 9, Align: "center"}, cell)
	}

	for i, op := range problem2Operators {
		row := 12 + i
		ws.Set(fmt.Sprintf("A%d", row), "Op "+op)
		for h := 0; h < 12; h++ {
			cell := fmt.Sprintf("%s%d", Col(h+2), row)
			ws.Set(cell, 0)
			ws.Fill(FillVariable, cell)
		}
		ws.Set(fmt.Sprintf("N%d", row), fmt.Sprintf("=SUM(B%d:M%d)", row, row))
		ws.Set(fmt.Sprintf("O%d", row), 7)
	}

	ws.Set("A22", "Coverage")
	ws.Bold("A22")
	for h := 0; h < 12; h++ {
		col := Col(h + 2)
		cell := col + "22"
		ws.Set(cell, fmt.Sprintf("=SUM(%s12:%s21)", col, col))
		ws.Style(Style{Bold: true, Fill: FillTotal}, cell)
	}

	ws.Set("A23", "Required")
	ws.Bold("A23")
	for i, req := range problem2Requirements {
		ws.Set(fmt.Sprintf("%s23", Col(i+2)), req)
	}

	// Lunch L[o,h], hours 5-7 only.
	ws.Section("A25", "LUNCH VARIABLES (L_o,h) - Hours 5,6,7 only (11AM-2PM)", FillAlertRed, 12, "F25")
	lunchHeaders := []string{"Operator", "11-12PM (h5)", "12-1PM (h6)", "1-2PM (h7)", "Total Lunch", "Required"}
	for i, h := range lunchHeaders {
		cell := fmt.Sprintf("%s27", Col(i+1))
		ws.Set(cell, h)
		ws.Header(FillColumnHead, cell)
	}

	for i, op := range problem2Operators {
		row := 28 + i
		ws.Set(fmt.Sprintf("A%d", row), "Op "+op)
		for _, col := range []string{"B", "C", "D"} {
			cell := fmt.Sprintf("%s%d", col, row)
			ws.Set(cell, 0)
			ws.Fill(FillBinary, cell)
		}
		ws.Set(fmt.Sprintf("E%d", row), fmt.Sprintf("=B%d+C%d+D%d", row, row, row))
		ws.Set(fmt.Sprintf("F%d", row), 1)
	}

	ws.Section("A40", "COST CALCULATION", FillHeaderBlue, 12, "E40")
	for i, h := range []string{"Operator", "Work Hours", "Lunch Hours Paid", "Total Pay Hours", "Daily Cost"} {
		cell := fmt.Sprintf("%s42", Col(i+1))
		ws.Set(cell, h)
		ws.Bold(cell)
	}

	for i, op := range problem2Operators {
		row := 43 + i
		work := 12 + i
		lunch := 28 + i
		ws.Set(fmt.Sprintf("A%d", row), "Op "+op)
		ws.Set(fmt.Sprintf("B%d", row), fmt.Sprintf("=N%d", work))
		ws.Set(fmt.Sprintf("C%d", row), fmt.Sprintf("=E%d", lunch))
		ws.Set(fmt.Sprintf("D%d", row), fmt.Sprintf("=B%d+C%d", row, row))
		ws.Set(fmt.Sprintf("E%d", row), problem2CostFormula(work, lunch))
	}

	ws.Set("A53", "TOTAL DAILY COST")
	ws.Style(Style{Bold: true, Size: 12}, "A53")
	ws.Set("E53", "=SUM(E43:E52)")
	ws.Style(Style{Bold: true, Size: 12, Fill: FillObjective}, "E53")

	ws.Section("G40", "SOLVER SETUP INSTRUCTIONS", FillAlertRed, 11, "K40")
	for i, line := range problem2Instructions {
		ws.Set(fmt.Sprintf("G%d", 41+i), line)
	}

	ws.Section("G25", "CONSTRAINT CHECKS", FillCheckGreen, 11, "J25")
	ws.Set("G27", "Constraint")
	ws.Set("H27", "Current")
	ws.Set("I27", "Required")
	ws.Set("J27", "Status")
	ws.Bold("G27", "H27", "I27", "J27")
	for i, op := range problem2Operators {
		row := 28 + i
		ws.Set(fmt.Sprintf("G%d", row), fmt.Sprintf("Op %s hours", op))
		ws.Set(fmt.Sprintf("H%d", row), fmt.Sprintf("=N%d", 12+i))
		ws.Set(fmt.Sprintf("I%d", row), 7)
		ws.Set(fmt.Sprintf("J%d", row), fmt.Sprintf(`=IF(H%d=I%d,"OK","CHECK")`, row, row))
	}

	ws.Set("G38", "Lunch checks")
	ws.Header(FillColumnHead, "G38")

	ws.ColWidth("A", "A", 12)
	ws.ColWidth("B", "M", 7)
	ws.ColWidth("N", "N", 8)
	ws.ColWidth("O", "O", 10)
	ws.ColWidth("G", "G", 25)
	ws.ColWidth("H", "J", 10)
}

// problem2CostFormula prices hours 1-2 and 11-12 at $25, hours 3-10 and
// lunch at $18.
func problem2CostFormula(work, lunch int) string {
	return fmt.Sprintf("=(B%[1]d+C%[1]d)*25"+
		"+(D%[1]d+E%[1]d+F%[1]d+G%[1]d+H%[1]d+I%[1]d+J%[1]d+K%[1]d)*18"+
		"+(L%[1]d+M%[1]d)*25"+
		"+E%[2]d*18", work, lunch)
}
