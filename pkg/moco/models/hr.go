package models

import "time"

// Activity is a time entry booked on a project task.
type Activity struct {
	ID             int        `json:"id"`
	Date           Date       `json:"date"`
	Hours          float64    `json:"hours"`
	Seconds        int        `json:"seconds"`
	Description    string     `json:"description"`
	Billed         bool       `json:"billed"`
	Billable       bool       `json:"billable"`
	Tag            string     `json:"tag"`
	RemoteService  string     `json:"remote_service"`
	RemoteID       string     `json:"remote_id"`
	RemoteURL      string     `json:"remote_url"`
	Project        ProjectRef `json:"project"`
	Task           TaskRef    `json:"task"`
	Customer       CompanyRef `json:"customer"`
	User           UserRef    `json:"user"`
	HourlyRate     float64    `json:"hourly_rate"`
	TimerStartedAt *time.Time `json:"timer_started_at"`
	Timestamps
}

// Presence is a span of working time recorded by the presence clock.
// From and To are wall-clock times (15:04).
type Presence struct {
	ID           int     `json:"id"`
	Date         Date    `json:"date"`
	From         string  `json:"from"`
	To           string  `json:"to"`
	IsHomeOffice bool    `json:"is_home_office"`
	User         UserRef `json:"user"`
	Timestamps
}

// Holiday is the holiday entitlement of a user for one year.
type Holiday struct {
	ID      int     `json:"id"`
	Year    int     `json:"year"`
	Title   string  `json:"title"`
	Days    float64 `json:"days"`
	Hours   float64 `json:"hours"`
	User    UserRef `json:"user"`
	Creator UserRef `json:"creator"`
	Timestamps
}

// EmploymentPattern lists morning and afternoon hours for Monday to Friday.
type EmploymentPattern struct {
	AM []float64 `json:"am"`
	PM []float64 `json:"pm"`
}

// Employment is a weekly working-time agreement of a user.
type Employment struct {
	ID                int               `json:"id"`
	WeeklyTargetHours float64           `json:"weekly_target_hours"`
	Pattern           EmploymentPattern `json:"pattern"`
	From              Date              `json:"from"`
	To                Date              `json:"to"`
	User              UserRef           `json:"user"`
	Timestamps
}

// User is a staff member of the Moco account.
type User struct {
	ID               int            `json:"id"`
	Firstname        string         `json:"firstname"`
	Lastname         string         `json:"lastname"`
	Active           bool           `json:"active"`
	Extern           bool           `json:"extern"`
	Email            string         `json:"email"`
	MobilePhone      string         `json:"mobile_phone"`
	WorkPhone        string         `json:"work_phone"`
	HomeAddress      string         `json:"home_address"`
	Info             string         `json:"info"`
	Birthday         Date           `json:"birthday"`
	IBAN             string         `json:"iban"`
	Language         string         `json:"language"`
	AvatarURL        string         `json:"avatar_url"`
	Tags             []string       `json:"tags"`
	CustomProperties map[string]any `json:"custom_properties"`
	Unit             UnitRef        `json:"unit"`
	Timestamps
}

// Unit is a team users belong to.
type Unit struct {
	ID    int       `json:"id"`
	Name  string    `json:"name"`
	Users []UserRef `json:"users"`
	Timestamps
}

// Assignment is the absence kind or project a schedule entry refers to.
type Assignment struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	Type string `json:"type"`
}

// Schedule is an absence entry (holiday, sick day, ...) for half or full days.
type Schedule struct {
	ID         int        `json:"id"`
	Date       Date       `json:"date"`
	Comment    string     `json:"comment"`
	AM         bool       `json:"am"`
	PM         bool       `json:"pm"`
	Symbol     int        `json:"symbol"`
	Assignment Assignment `json:"assignment"`
	User       UserRef    `json:"user"`
	Timestamps
}

// PlanningEntry reserves hours per day of a user on a project or deal.
type PlanningEntry struct {
	ID          int         `json:"id"`
	Title       string      `json:"title"`
	StartsOn    Date        `json:"starts_on"`
	EndsOn      Date        `json:"ends_on"`
	HoursPerDay float64     `json:"hours_per_day"`
	Comment     string      `json:"comment"`
	Symbol      int         `json:"symbol"`
	Color       string      `json:"color"`
	ReadOnly    bool        `json:"read_only"`
	User        UserRef     `json:"user"`
	Project     *ProjectRef `json:"project"`
	Deal        *DealRef    `json:"deal"`
	Timestamps
}
