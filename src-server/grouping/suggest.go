// Package grouping turns the attendee list into suggested groups: attendees
// are bucketed by preferred format, then by industry, then cut into chunks of
// at most MaxGroupSize in input order.
package grouping

import (
	"huddle/src-server/model"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const MaxGroupSize = 8

// Chunk is a run of same-format, same-industry attendees that seeds one group.
type Chunk struct {
	Format    model.EventFormat
	Industry  model.Industry
	Attendees []model.Attendee
}

// Name is the label of the group built from the chunk, e.g. "Saas Dinner".
// Chunks from the same bucket share a name.
func (c Chunk) Name() string {
	return GroupName(c.Industry, c.Format)
}

// Group returns the unsaved candidate group for the chunk.
func (c Chunk) Group() model.Group {
	return model.Group{
		Name:   c.Name(),
		Format: c.Format,
		Locked: false,
	}
}

func (c Chunk) AttendeeIDs() []int64 {
	ids := make([]int64, len(c.Attendees))
	for i, a := range c.Attendees {
		ids[i] = a.ID
	}
	return ids
}

func GroupName(industry model.Industry, format model.EventFormat) string {
	return cases.Title(language.English).String(string(industry) + " " + string(format))
}

// bucket keeps first-seen key order next to the grouped values
type bucket[K comparable] struct {
	keys []K
	vals map[K][]model.Attendee
}

func newBucket[K comparable]() *bucket[K] {
	return &bucket[K]{vals: make(map[K][]model.Attendee)}
}

func (b *bucket[K]) add(k K, a model.Attendee) {
	if _, ok := b.vals[k]; !ok {
		b.keys = append(b.keys, k)
	}
	b.vals[k] = append(b.vals[k], a)
}

// Partition splits attendees into chunks. Output order is format (first seen),
// then industry (first seen within the format), then chunk index.
func Partition(attendees []model.Attendee) []Chunk {
	byFormat := newBucket[model.EventFormat]()
	for _, a := range attendees {
		byFormat.add(a.Responses.PreferredFormat, a)
	}

	chunks := make([]Chunk, 0)
	for _, format := range byFormat.keys {
		byIndustry := newBucket[model.Industry]()
		for _, a := range byFormat.vals[format] {
			byIndustry.add(a.Responses.Industry, a)
		}

		for _, industry := range byIndustry.keys {
			members := byIndustry.vals[industry]
			for start := 0; start < len(members); start += MaxGroupSize {
				end := min(start+MaxGroupSize, len(members))
				chunks = append(chunks, Chunk{
					Format:    format,
					Industry:  industry,
					Attendees: members[start:end:end],
				})
			}
		}
	}
	return chunks
}

// Suggest returns one candidate group per chunk, in Partition order.
func Suggest(attendees []model.Attendee) []model.Group {
	chunks := Partition(attendees)
	groups := make([]model.Group, len(chunks))
	for i, c := range chunks {
		groups[i] = c.Group()
	}
	return groups
}
