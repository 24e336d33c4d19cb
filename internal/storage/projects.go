package storage

import "strconv"

type Project struct {
	ID       int     `json:"id" yaml:"id"`
	Name     string  `json:"name" yaml:"name"`
	Manager  string  `json:"manager" yaml:"manager"`
	Progress int     `json:"progress" yaml:"progress"`
	Status   string  `json:"status" yaml:"status"`
	Start    string  `json:"start" yaml:"start"`
	End      string  `json:"end" yaml:"end"`
	Budget   float64 `json:"budget" yaml:"budget"`
}

func (p Project) RowKey() string         { return strconv.Itoa(p.ID) }
func (p Project) SearchFields() []string { return []string{p.Name, p.Manager} }
func (p Project) FilterValue() string    { return p.Status }

// Task.Project — просто название проекта, не ссылка на Project.ID.
type Task struct {
	ID       int    `json:"id" yaml:"id"`
	Title    string `json:"title" yaml:"title"`
	Project  string `json:"project" yaml:"project"`
	Assignee string `json:"assignee" yaml:"assignee"`
	Priority string `json:"priority" yaml:"priority"`
	Status   string `json:"status" yaml:"status"`
	Due      string `json:"due" yaml:"due"`
}

func (t Task) RowKey() string         { return strconv.Itoa(t.ID) }
func (t Task) SearchFields() []string { return []string{t.Title, t.Project, t.Assignee} }
func (t Task) FilterValue() string    { return t.Status }

type Resource struct {
	ID         int    `json:"id" yaml:"id"`
	Name       string `json:"name" yaml:"name"`
	Role       string `json:"role" yaml:"role"`
	Department string `json:"department" yaml:"department"`
	Allocation int    `json:"allocation" yaml:"allocation"`
	Status     string `json:"status" yaml:"status"`
}

func (r Resource) RowKey() string         { return strconv.Itoa(r.ID) }
func (r Resource) SearchFields() []string { return []string{r.Name, r.Role, r.Department} }
func (r Resource) FilterValue() string    { return r.Status }

type CalendarEvent struct {
	ID      int    `json:"id" yaml:"id"`
	Title   string `json:"title" yaml:"title"`
	Project string `json:"project" yaml:"project"`
	Kind    string `json:"kind" yaml:"kind"`
	Date    string `json:"date" yaml:"date"`
	Time    string `json:"time" yaml:"time"`
}

func (e CalendarEvent) RowKey() string         { return strconv.Itoa(e.ID) }
func (e CalendarEvent) SearchFields() []string { return []string{e.Title, e.Project} }
func (e CalendarEvent) FilterValue() string    { return e.Kind }
