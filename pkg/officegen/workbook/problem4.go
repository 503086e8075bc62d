package workbook

import "fmt"

// Problem 4: concert stage setup worker assignment.
type worker struct {
	id    int
	rate  int
	hours int
}

var problem4Workers = []worker{{1, 20, 20}, {2, 18, 18}, {3, 15, 15}, {4, 12, 10}}

// Sheet names of the problem 4 workbook.
const (
	Problem4BasicSheet    = "Part B - Basic Model"
	Problem4ExtendedSheet = "Part D - Extended Model"
)

var problem4BasicInstructions = []string{
	"1. Objective: Minimize D28",
	"2. Variables: B14:C17",
	"3. Constraints:",
	"   - B18 = 20 (Task 1)",
	"   - C18 = 15 (Task 2)",
	"   - D14:D17 <= E14:E17",
	"   - B14:C17 >= 0",
	"   - B14:C17 = integer",
	"4. Method: Simplex LP",
}

var problem4ExtendedInstructions = []string{
	"1. Objective: Minimize D37",
	"2. Variables: B14:C17, B27 (b3)",
	"3. Constraints (in addition to basic):",
	"   R1: B23+B24+B25+B26 >= 3",
	"   R1: B14 <= 20*B23, B15 <= 18*B24",
	"   R1: B16 <= 15*B25, B17 <= 10*B26",
	"   R2: B16 <= 15*B27",
	"   R2: C16 <= 15*(1-B27)",
	"   R3: C17 <= 10*B28",
	"   R3: C17 >= 5*B28",
	"4. B27 must be binary {0,1}",
	"5. Note: B23-B26, B28 auto-calculated",
}

type binaryVar struct {
	name  string
	value interface{}
	desc  string
}

var problem4BinaryVars = []binaryVar{
	{"z1", "=IF(B14>0,1,0)", "Worker 1 works on structure (R1)"},
	{"z2", "=IF(B15>0,1,0)", "Worker 2 works on structure (R1)"},
	{"z3", "=IF(B16>0,1,0)", "Worker 3 works on structure (R1)"},
	{"z4", "=IF(B17>0,1,0)", "Worker 4 works on structure (R1)"},
	{"b3", 0, "Worker 3 task choice: 1=structure, 0=electrical (R2)"},
	{"u4", "=IF(C17>0,1,0)", "Worker 4 works on electrical (R3)"},
}

// Current values starting with "=" are formulas; the others are references
// written as text.
var problem4Constraints = [][4]string{
	{"R1", "At least 3 on structure", "=B23+B24+B25+B26", ">=3"},
	{"R1", "z1 links to x_1,1", "B14", "<=20*B23"},
	{"R1", "z2 links to x_2,1", "B15", "<=18*B24"},
	{"R1", "z3 links to x_3,1", "B16", "<=15*B25"},
	{"R1", "z4 links to x_4,1", "B17", "<=10*B26"},
	{"R2", "Worker 3: x_3,1 limit", "B16", "<=15*B27"},
	{"R2", "Worker 3: x_3,2 limit", "C16", "<=15*(1-B27)"},
	{"R3", "Worker 4: x_4,2 upper", "C17", "<=10*B28"},
	{"R3", "Worker 4: x_4,2 lower", "C17", ">=5*B28"},
}

// BuildProblem4 lays out the basic and extended worker assignment models.
func BuildProblem4(b *Book) {
	buildProblem4Basic(b.Sheet(Problem4BasicSheet))
	buildProblem4Extended(b.Sheet(Problem4ExtendedSheet))
}

// workerParameters writes the worker table at A5:C9.
func workerParameters(ws *Sheet) {
	ws.Section("A3", "PARAMETERS", FillHeaderBlue, 12, "G3")
	ws.Set("A5", "Worker")
	ws.Set("B5", "Hourly Rate")
	ws.Set("C5", "Hours Available")
	ws.Bold("A5", "B5", "C5")
	for i, w := range problem4Workers {
		row := 6 + i
		ws.Set(fmt.Sprintf("A%d", row), fmt.Sprintf("Worker %d", w.id))
		ws.Set(fmt.Sprintf("B%d", row), w.rate)
		ws.Set(fmt.Sprintf("C%d", row), w.hours)
	}
}

// hoursWorked writes the decision variable block at A13:E18.
func hoursWorked(ws *Sheet, totalHeader string) {
	headers := []string{"Worker", "Structure (Task 1)", "Electrical (Task 2)", totalHeader, "Capacity"}
	for i, h := range headers {
		cell := fmt.Sprintf("%s13", Col(i+1))
		ws.Set(cell, h)
		ws.Header(FillColumnHead, cell)
	}
	for i, w := range problem4Workers {
		row := 14 + i
		ws.Set(fmt.Sprintf("A%d", row), fmt.Sprintf("Worker %d", i+1))
		ws.Set(fmt.Sprintf("B%d", row), 0)
		ws.Set(fmt.Sprintf("C%d", row), 0)
		ws.Set(fmt.Sprintf("D%d", row), fmt.Sprintf("=B%d+C%d", row, row))
		ws.Set(fmt.Sprintf("E%d", row), w.hours)
		ws.Fill(FillVariable, fmt.Sprintf("B%d", row), fmt.Sprintf("C%d", row))
	}

	ws.Set("A18", "TOTAL HOURS")
	ws.Bold("A18")
	ws.Set("B18", "=SUM(B14:B17)")
	ws.Set("C18", "=SUM(C14:C17)")
	ws.Header(FillTotal, "B18", "C18")
}

func buildProblem4Basic(ws *Sheet) {
	ws.Title("A1", "Problem 4 Part (b): Basic Worker Assignment Model", "G1")
	workerParameters(ws)

	ws.Set("E5", "Task")
	ws.Set("F5", "Description")
	ws.Set("G5", "Hours Required")
	ws.Bold("E5", "F5", "G5")
	ws.Set("E6", "Task 1")
	ws.Set("F6", "Structure building")
	ws.Set("G6", 20)
	ws.Set("E7", "Task 2")
	ws.Set("F7", "Electrical wiring")
	ws.Set("G7", 15)

	ws.Section("A11", "DECISION VARIABLES (Hours Worked)", FillHeaderBlue, 12, "E11")
	hoursWorked(ws, "Total Hours Used")

	ws.Set("A19", "REQUIRED")
	ws.Bold("A19")
	ws.Set("B19", 20)
	ws.Set("C19", 15)

	ws.Section("A21", "COST CALCULATION", FillHeaderBlue, 12, "D21")
	for i, h := range []string{"Worker", "Hours Used", "Rate", "Cost"} {
		cell := fmt.Sprintf("%s23", Col(i+1))
		ws.Set(cell, h)
		ws.Header(FillColumnHead, cell)
	}
	for i, w := range problem4Workers {
		row := 24 + i
		ws.Set(fmt.Sprintf("A%d", row), fmt.Sprintf("Worker %d ($%d/hr)", i+1, w.rate))
		ws.Set(fmt.Sprintf("B%d", row), fmt.Sprintf("=D%d", 14+i))
		ws.Set(fmt.Sprintf("C%d", row), w.rate)
		ws.Set(fmt.Sprintf("D%d", row), fmt.Sprintf("=B%d*C%d", row, row))
	}

	ws.Set("A28", "TOTAL COST")
	ws.Style(Style{Bold: true, Size: 12}, "A28")
	ws.Set("D28", "=SUM(D24:D27)")
	ws.Style(Style{Bold: true, Size: 12, Fill: FillObjective}, "D28")

	ws.Section("F11", "CONSTRAINTS SUMMARY", FillCheckGreen, 12, "H11")
	ws.Set("F13", "Constraint")
	ws.Set("G13", "Current")
	ws.Set("H13", "Required")
	ws.Bold("F13", "G13", "H13")

	ws.Set("F14", "Task 1 Hours")
	ws.Set("G14", "=B18")
	ws.Set("H14", "=B19")
	ws.Set("F15", "Task 2 Hours")
	ws.Set("G15", "=C18")
	ws.Set("H15", "=C19")
	for i := range problem4Workers {
		row := 16 + i
		ws.Set(fmt.Sprintf("F%d", row), fmt.Sprintf("Worker %d Capacity", i+1))
		ws.Set(fmt.Sprintf("G%d", row), fmt.Sprintf("=D%d", 14+i))
		ws.Set(fmt.Sprintf("H%d", row), fmt.Sprintf("<=E%d", 14+i))
	}

	ws.Section("F21", "SOLVER SETUP", FillAlertRed, 12, "H21")
	for i, line := range problem4BasicInstructions {
		ws.Set(fmt.Sprintf("F%d", 22+i), line)
	}

	ws.ColWidth("A", "A", 20)
	ws.ColWidth("B", "C", 18)
	ws.ColWidth("D", "D", 15)
	ws.ColWidth("E", "E", 12)
	ws.ColWidth("F", "F", 20)
	ws.ColWidth("G", "H", 12)
}

func buildProblem4Extended(ws *Sheet) {
	ws.Title("A1", "Problem 4 Part (d): Extended Model with Safety/Union Rules", "H1")
	workerParameters(ws)

	ws.Set("E5", "Task")
	ws.Set("F5", "Hours Required")
	ws.Bold("E5", "F5")
	ws.Set("E6", "Task 1 (Structure)")
	ws.Set("F6", 20)
	ws.Set("E7", "Task 2 (Electrical)")
	ws.Set("F7", 15)

	ws.Section("A11", "DECISION VARIABLES", FillHeaderBlue, 12, "E11")
	hoursWorked(ws, "Total Hours")

	ws.Section("A20", "BINARY INDICATOR VARIABLES", FillAlertRed, 12, "E20")
	ws.Set("A22", "Variable")
	ws.Set("B22", "Value")
	ws.Set("C22", "Description")
	ws.Bold("A22", "B22", "C22")
	for i, v := range problem4BinaryVars {
		row := 23 + i
		ws.Set(fmt.Sprintf("A%d", row), v.name)
		ws.Set(fmt.Sprintf("B%d", row), v.value)
		ws.Set(fmt.Sprintf("C%d", row), v.desc)
		ws.Fill(FillBinary, fmt.Sprintf("B%d", row))
	}

	ws.Section("A30", "COST CALCULATION", FillHeaderBlue, 12, "D30")
	ws.Set("A32", "Worker")
	ws.Set("B32", "Hours")
	ws.Set("C32", "Rate")
	ws.Set("D32", "Cost")
	ws.Bold("A32", "B32", "C32", "D32")
	for i, w := range problem4Workers {
		row := 33 + i
		ws.Set(fmt.Sprintf("A%d", row), fmt.Sprintf("Worker %d", i+1))
		ws.Set(fmt.Sprintf("B%d", row), fmt.Sprintf("=D%d", 14+i))
		ws.Set(fmt.Sprintf("C%d", row), w.rate)
		ws.Set(fmt.Sprintf("D%d", row), fmt.Sprintf("=B%d*C%d", row, row))
	}

	ws.Set("A37", "TOTAL COST")
	ws.Style(Style{Bold: true, Size: 12}, "A37")
	ws.Set("D37", "=SUM(D33:D36)")
	ws.Style(Style{Bold: true, Size: 12, Fill: FillObjective}, "D37")

	ws.Section("F11", "ADDITIONAL CONSTRAINTS (R1, R2, R3)", FillCheckGreen, 12, "I11")
	ws.Set("F13", "Rule")
	ws.Set("G13", "Constraint")
	ws.Set("H13", "Current")
	ws.Set("I13", "Required")
	ws.Bold("F13", "G13", "H13", "I13")
	for i, c := range problem4Constraints {
		row := 14 + i
		ws.Set(fmt.Sprintf("F%d", row), c[0])
		ws.Set(fmt.Sprintf("G%d", row), c[1])
		ws.Set(fmt.Sprintf("H%d", row), c[2])
		ws.Set(fmt.Sprintf("I%d", row), c[3])
	}

	ws.Section("F24", "SOLVER SETUP FOR EXTENDED MODEL", FillAlertRed, 11, "I24")
	for i, line := range problem4ExtendedInstructions {
		ws.Set(fmt.Sprintf("F%d", 25+i), line)
	}

	ws.ColWidth("A", "A", 20)
	ws.ColWidth("B", "B", 18)
	ws.ColWidth("C", "C", 30)
	ws.ColWidth("D", "D", 15)
	ws.ColWidth("E", "E", 12)
	ws.ColWidth("F", "F", 8)
	ws.ColWidth("G", "G", 22)
	ws.ColWidth("H", "H", 12)
	ws.ColWidth("I", "I", 15)
}
