// Package view holds the dashboard's rendered state. Every render call
// replaces the previous content, so repeated lookups never stack panels.
package view

import (
	"fmt"
	"strconv"
	"sync"
	"time"

	"weather-dashboard/internal/clock"
	"weather-dashboard/internal/forecast"
	"weather-dashboard/internal/types"

	"github.com/google/uuid"
)

const (
	LoadingMessage = "Loading..."
	FailedMessage  = "Failed to load weather data."

	DefaultNotificationTTL = 5 * time.Second
)

// CurrentPanel is the formatted current-conditions panel
type CurrentPanel struct {
	City        string           `json:"city"`
	Description string           `json:"description"`
	Icon        string           `json:"icon"`
	Temperature string           `json:"temperature"`
	Wind        string           `json:"wind"`
	Raw         forecast.Current `json:"raw"`
}

// DayCard is one formatted entry of the forecast list
type DayCard struct {
	Label         string `json:"label"`
	Icon          string `json:"icon"`
	Description   string `json:"description"`
	Temperatures  string `json:"temperatures"`
	Precipitation string `json:"precipitation"`
}

// HourBlock is one formatted bar of the timeline
type HourBlock struct {
	Label       string  `json:"label"`
	Temperature string  `json:"temperature"`
	Icon        string  `json:"icon"`
	BarHeight   float64 `json:"barHeight"`
}

type Notification struct {
	ID        string    `json:"id"`
	Message   string    `json:"message"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// Snapshot is a copy of everything on screen
type Snapshot struct {
	Location      *types.Location `json:"location,omitempty"`
	Current       *CurrentPanel   `json:"current,omitempty"`
	Message       string          `json:"message,omitempty"`
	Loading       bool            `json:"loading"`
	Days          []DayCard       `json:"days"`
	Hours         []HourBlock     `json:"hours"`
	Notifications []Notification  `json:"notifications"`
}

type content struct {
	location *types.Location
	current  *CurrentPanel
	message  string
	loading  bool
	days     []DayCard
	hours    []HourBlock
}

type View struct {
	mu            sync.Mutex
	clock         clock.Clock
	ttl           time.Duration
	content       content
	beforeLoading content
	notifications []Notification
}

func New(clk clock.Clock, notificationTTL time.Duration) *View {
	if clk == nil {
		clk = clock.System()
	}
	if notificationTTL <= 0 {
		notificationTTL = DefaultNotificationTTL
	}
	return &View{clock: clk, ttl: notificationTTL}
}

// ShowLoading shows the loading message and empties both lists. What was on
// screen before is kept so CancelLoading can bring it back.
func (v *View) ShowLoading() {
	v.mu.Lock()
	defer v.mu.Unlock()

	if !v.content.loading {
		v.beforeLoading = v.content
	}
	v.content = content{message: LoadingMessage, loading: true}
}

// CancelLoading restores the content shown before ShowLoading. It does
// nothing if the view is not loading.
func (v *View) CancelLoading() {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.content.loading {
		v.content = v.beforeLoading
	}
}

// ShowWeather replaces the panels with a rendered forecast
func (v *View) ShowWeather(loc types.Location, cur forecast.Current, days []forecast.Day, hours []forecast.Hour) {
	panel := &CurrentPanel{
		City:        loc.DisplayName,
		Description: cur.Condition.Description,
		Icon:        cur.Condition.Icon,
		Temperature: fmt.Sprintf("%.1f°C", float64(cur.Temperature)),
		Wind:        fmt.Sprintf("Wind: %d m/s", cur.WindSpeed),
		Raw:         cur,
	}

	dayCards := make([]DayCard, 0, len(days))
	for _, d := range days {
		dayCards = append(dayCards, DayCard{
			Label:         d.Label,
			Icon:          d.Condition.Icon,
			Description:   d.Condition.Description,
			Temperatures:  fmt.Sprintf("%d° / %d°", d.TempMax, d.TempMin),
			Precipitation: "Precip: " + strconv.FormatFloat(d.Precipitation, 'f', -1, 64) + " mm",
		})
	}

	hourBlocks := make([]HourBlock, 0, len(hours))
	for _, h := range hours {
		hourBlocks = append(hourBlocks, HourBlock{
			Label:       h.Label,
			Temperature: fmt.Sprintf("%d°", h.Temperature),
			Icon:        h.Condition.Icon,
			BarHeight:   h.BarHeight,
		})
	}

	v.mu.Lock()
	defer v.mu.Unlock()
	v.content = content{
		location: &loc,
		current:  panel,
		days:     dayCards,
		hours:    hourBlocks,
	}
}

// ShowError replaces the current panel with the failure message and leaves
// the lists empty
func (v *View) ShowError() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.content = content{message: FailedMessage}
}

// Notify posts a transient message that expires after the view's TTL
func (v *View) Notify(message string) Notification {
	v.mu.Lock()
	defer v.mu.Unlock()

	now := v.clock.Now()
	v.pruneLocked(now)
	n := Notification{
		ID:        uuid.NewString(),
		Message:   message,
		ExpiresAt: now.Add(v.ttl),
	}
	v.notifications = append(v.notifications, n)
	return n
}

func (v *View) Snapshot() Snapshot {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.pruneLocked(v.clock.Now())
	c := v.content
	snap := Snapshot{
		Current:       c.current,
		Message:       c.message,
		Loading:       c.loading,
		Days:          append([]DayCard{}, c.days...),
		Hours:         append([]HourBlock{}, c.hours...),
		Notifications: append([]Notification{}, v.notifications...),
	}
	if c.location != nil {
		loc := *c.location
		snap.Location = &loc
	}
	if c.current != nil {
		panel := *c.current
		snap.Current = &panel
	}
	return snap
}

func (v *View) pruneLocked(now time.Time) {
	kept := v.notifications[:0]
	for _, n := range v.notifications {
		if now.Before(n.ExpiresAt) {
			kept = append(kept, n)
		}
	}
	v.notifications = kept
}
