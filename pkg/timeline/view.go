package timeline

import (
	"strconv"
	"time"

	"github.com/folio/handler/payload"
)

// Entrance timings. Cards cascade by index, each dot lands shortly after its
// card starts, and bullets cascade within their card.
const (
	CardStagger  = 300 * time.Millisecond
	DotOffset    = 200 * time.Millisecond
	PointStagger = 100 * time.Millisecond
)

type Point struct {
	Index int
	Text  string
	Delay string
}

type Entry struct {
	Index     int
	ID        string
	Record    payload.ExperienceData
	CardDelay string
	DotDelay  string
	Points    []Point
}

type View struct {
	Entries []Entry
}

// Build maps records onto entries in input order. Records are taken as they
// are: empty fields stay empty and an empty points list yields no bullets.
func Build(records []payload.ExperienceData) View {
	entries := make([]Entry, 0, len(records))

	for index, record := range records {
		stagger := time.Duration(index) * CardStagger

		points := make([]Point, 0, len(record.Points))
		for pointIndex, text := range record.Points {
			points = append(points, Point{
				Index: pointIndex,
				Text:  text,
				Delay: formatDelay(time.Duration(pointIndex) * PointStagger),
			})
		}

		entries = append(entries, Entry{
			Index:     index,
			ID:        "experience-" + strconv.Itoa(index),
			Record:    record,
			CardDelay: formatDelay(stagger),
			DotDelay:  formatDelay(stagger + DotOffset),
			Points:    points,
		})
	}

	return View{Entries: entries}
}

func formatDelay(d time.Duration) string {
	return strconv.FormatInt(d.Milliseconds(), 10) + "ms"
}
