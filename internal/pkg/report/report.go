// Package report renders workload figures as terminal tables.
package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"

	"github.com/yigit/workload/internal/app/models"
	"github.com/yigit/workload/internal/app/workload"
)

var (
	title   = color.New(color.FgYellow, color.Bold)
	success = color.New(color.FgGreen)
	failure = color.New(color.FgRed)

	statusColors = map[models.WorkloadStatus]*color.Color{
		models.StatusNormal:    color.New(color.FgGreen),
		models.StatusOverload:  color.New(color.FgRed, color.Bold),
		models.StatusUnderload: color.New(color.FgYellow),
	}
)

func hours(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func status(s models.WorkloadStatus) string {
	if c, ok := statusColors[s]; ok {
		return c.Sprint(s.Label())
	}
	return s.Label()
}

// Workloads prints the term overview, one row per teacher, plus a totals footer.
func Workloads(w io.Writer, academicYear string, semester models.Semester, workloads []*models.TeacherWorkload) {
	title.Fprintf(w, "\nTeaching workload %s %s\n", academicYear, semester)
	if len(workloads) == 0 {
		fmt.Fprintln(w, "No workload recorded for this term.")
		return
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Teacher", "Department", "Assignments", "Total", "Confirmed", "Max", "Overload", "Underload", "Status"})
	table.SetAutoFormatHeaders(false)
	table.SetAlignment(tablewriter.ALIGN_RIGHT)

	var total, confirmed float64
	var count, overloaded int
	for _, wl := range workloads {
		name, department := strconv.FormatInt(wl.TeacherID, 10), ""
		if wl.Teacher != nil {
			name, department = wl.Teacher.FullName(), wl.Teacher.Department
		}
		table.Append([]string{
			name,
			department,
			strconv.Itoa(wl.AssignmentCount),
			hours(wl.TotalHours),
			hours(wl.ConfirmedHours),
			hours(wl.MaxHours),
			hours(wl.OverloadHours),
			hours(wl.UnderloadHours),
			status(wl.Status),
		})
		total += wl.TotalHours
		confirmed += wl.ConfirmedHours
		count += wl.AssignmentCount
		if wl.Status == models.StatusOverload {
			overloaded++
		}
	}
	table.SetFooter([]string{
		fmt.Sprintf("%d teachers", len(workloads)), "", strconv.Itoa(count), hours(total), hours(confirmed),
		"", "", "", fmt.Sprintf("%d overloaded", overloaded),
	})
	table.Render()
}

// Hours prints the breakdown of one atom taught to an audience.
func Hours(w io.Writer, atom models.PedagogicalAtom, capacity int, b workload.HoursBreakdown) {
	title.Fprintf(w, "\nHours for %s atom (%s h over %d weeks, %d students)\n", atom.Type, hours(atom.Hours), atom.TotalWeeks, capacity)

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Groups", "Hours/week", "Weeks", "Total hours"})
	table.Append([]string{
		strconv.Itoa(b.GroupsNeeded),
		hours(b.HoursPerWeek),
		strconv.Itoa(b.TotalWeeks),
		hours(b.TotalHours),
	})
	table.Render()
}

// Verdict prints whether an assignment is accepted, and the rule that refused it otherwise.
func Verdict(w io.Writer, v workload.Verdict) {
	if v.Valid {
		success.Fprintln(w, "Assignment accepted")
		return
	}
	failure.Fprintf(w, "Assignment refused [%s]: %s\n", v.Rule, v.Message)
}
