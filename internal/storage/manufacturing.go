package storage

import "strconv"

type ProductionSite struct {
	ID       int    `json:"id" yaml:"id"`
	Name     string `json:"name" yaml:"name"`
	Location string `json:"location" yaml:"location"`
	Output   int    `json:"output" yaml:"output"`
	Capacity int    `json:"capacity" yaml:"capacity"` // загрузка, 0–100
	Status   string `json:"status" yaml:"status"`
}

func (p ProductionSite) RowKey() string         { return strconv.Itoa(p.ID) }
func (p ProductionSite) SearchFields() []string { return []string{p.Name, p.Location} }
func (p ProductionSite) FilterValue() string    { return p.Status }

type ProductionOrder struct {
	ID       int    `json:"id" yaml:"id"`
	Product  string `json:"product" yaml:"product"`
	Line     string `json:"line" yaml:"line"`
	Quantity int    `json:"quantity" yaml:"quantity"`
	Progress int    `json:"progress" yaml:"progress"`
	Status   string `json:"status" yaml:"status"`
	Start    string `json:"start" yaml:"start"`
	End      string `json:"end" yaml:"end"`
}

func (o ProductionOrder) RowKey() string         { return strconv.Itoa(o.ID) }
func (o ProductionOrder) SearchFields() []string { return []string{o.Product, o.Line} }
func (o ProductionOrder) FilterValue() string    { return o.Status }

type QualityCheck struct {
	ID        int    `json:"id" yaml:"id"`
	Batch     string `json:"batch" yaml:"batch"`
	Product   string `json:"product" yaml:"product"`
	Inspector string `json:"inspector" yaml:"inspector"`
	Defects   int    `json:"defects" yaml:"defects"`
	Result    string `json:"result" yaml:"result"`
	Date      string `json:"date" yaml:"date"`
}

func (q QualityCheck) RowKey() string         { return strconv.Itoa(q.ID) }
func (q QualityCheck) SearchFields() []string { return []string{q.Batch, q.Product, q.Inspector} }
func (q QualityCheck) FilterValue() string    { return q.Result }

type MaintenanceTask struct {
	ID         int    `json:"id" yaml:"id"`
	Equipment  string `json:"equipment" yaml:"equipment"`
	Kind       string `json:"kind" yaml:"kind"`
	Technician string `json:"technician" yaml:"technician"`
	Priority   string `json:"priority" yaml:"priority"`
	Status     string `json:"status" yaml:"status"`
	Due        string `json:"due" yaml:"due"`
}

func (m MaintenanceTask) RowKey() string { return strconv.Itoa(m.ID) }
func (m MaintenanceTask) SearchFields() []string {
	return []string{m.Equipment, m.Kind, m.Technician}
}
func (m MaintenanceTask) FilterValue() string { return m.Status }

type PlanItem struct {
	ID       int    `json:"id" yaml:"id"`
	Product  string `json:"product" yaml:"product"`
	Start    string `json:"start" yaml:"start"`
	End      string `json:"end" yaml:"end"`
	Demand   int    `json:"demand" yaml:"demand"`
	Capacity int    `json:"capacity" yaml:"capacity"`
	Status   string `json:"status" yaml:"status"`
}

func (p PlanItem) RowKey() string         { return strconv.Itoa(p.ID) }
func (p PlanItem) SearchFields() []string { return []string{p.Product} }
func (p PlanItem) FilterValue() string    { return p.Status }
