package geofence

import (
	"fmt"
	"html"
	"strconv"
	"strings"

	"zumap/internal/domain/entity"
)

// TeaserPlaceholder is shown for drops without a teaser.
const TeaserPlaceholder = "A mysterious drop awaits!"

const (
	reachableOpacity   = 1.0
	unreachableOpacity = 0.5
)

// Icon is the glyph a map client draws for a drop.
type Icon string

const (
	IconText    Icon = "📝"
	IconImage   Icon = "🖼️"
	IconPDF     Icon = "📄"
	IconUnknown Icon = "❓"
)

// IconFor picks the icon for a content type.
func IconFor(t entity.ContentType) Icon {
	switch t {
	case entity.ContentTypeText:
		return IconText
	case entity.ContentTypeImage:
		return IconImage
	case entity.ContentTypePDF:
		return IconPDF
	default:
		return IconUnknown
	}
}

// MarkerKind distinguishes single-drop markers from clusters.
type MarkerKind string

const (
	MarkerSingle  MarkerKind = "single"
	MarkerCluster MarkerKind = "cluster"
)

// Affordance is the interaction offered for one drop.
type Affordance string

const (
	// AffordanceCollect means the drop is in reach and can be collected.
	AffordanceCollect Affordance = "collect"
	// AffordanceHint means the user must get closer (or share a location).
	AffordanceHint Affordance = "hint"
)

// MarkerItem describes one drop inside a marker.
type MarkerItem struct {
	DropID        string             `json:"drop_id"`
	ContentType   entity.ContentType `json:"content_type"`
	Icon          Icon               `json:"icon"`
	Teaser        string             `json:"teaser"`
	DistanceLabel string             `json:"distance_label,omitempty"`
	Reachability  *Reachability      `json:"reachability,omitempty"`
	InReach       bool               `json:"in_reach"`
	Affordance    Affordance         `json:"affordance"`
	Hint          string             `json:"hint,omitempty"`
	Opacity       float64            `json:"opacity"`
	Interactive   bool               `json:"interactive"`

	drop entity.Drop
}

// Drop returns the drop this item was built from.
func (i MarkerItem) Drop() entity.Drop {
	return i.drop
}

// MarkerPresentation is everything a map client needs to draw one bucket.
type MarkerPresentation struct {
	Key      string            `json:"key"`
	Position entity.Coordinate `json:"position"`
	Kind     MarkerKind        `json:"kind"`
	Icon     Icon              `json:"icon"`
	Badge    string            `json:"badge,omitempty"`
	Items    []MarkerItem      `json:"items"`
	Popup    string            `json:"popup"`
}

// BuildPresentation turns a bucket into a marker description. Teasers are
// always public; only the collect affordance depends on reachability.
func BuildPresentation(bucket Bucket, position *entity.Coordinate) MarkerPresentation {
	items := make([]MarkerItem, 0, len(bucket.Drops))
	for _, drop := range bucket.Drops {
		items = append(items, buildItem(drop, position))
	}

	presentation := MarkerPresentation{
		Key:      bucket.Key.String(),
		Position: bucket.Position,
		Items:    items,
	}

	if bucket.IsCluster() {
		presentation.Kind = MarkerCluster
		presentation.Icon = IconUnknown
		presentation.Badge = strconv.Itoa(len(items))
		presentation.Popup = clusterPopup(items)
	} else {
		presentation.Kind = MarkerSingle
		if len(items) == 1 {
			presentation.Icon = items[0].Icon
			presentation.Popup = singlePopup(items[0])
		}
	}

	return presentation
}

func buildItem(drop entity.Drop, position *entity.Coordinate) MarkerItem {
	item := MarkerItem{
		DropID:      drop.ID,
		ContentType: drop.ContentType,
		Icon:        IconFor(drop.ContentType),
		Teaser:      teaserOf(drop),
		Affordance:  AffordanceHint,
		Opacity:     unreachableOpacity,
		drop:        drop,
	}

	reach, ok := Evaluate(drop, position)
	if ok {
		item.Reachability = &reach
		if isFinite(reach.DistanceMeters) {
			item.DistanceLabel = FormatDistance(reach.DistanceMeters)
		}
	}

	if ok && reach.InReach {
		item.InReach = true
		item.Affordance = AffordanceCollect
		item.Opacity = reachableOpacity
		item.Interactive = true

		return item
	}

	item.Hint = fmt.Sprintf("Get closer to collect (within %s)", FormatThreshold(ResolveRevealDistance(drop)))

	return item
}

func teaserOf(drop entity.Drop) string {
	if strings.TrimSpace(drop.Teaser) == "" {
		return TeaserPlaceholder
	}

	return drop.Teaser
}

// FormatDistance renders a measured distance: meters with one decimal below
// 1000 m, kilometers with two decimals otherwise.
func FormatDistance(meters float64) string {
	if meters < 1000 {
		return strconv.FormatFloat(meters, 'f', 1, 64) + " m"
	}

	return strconv.FormatFloat(meters/1000, 'f', 2, 64) + " km"
}

// FormatThreshold renders a reveal distance, e.g. "50 meters" or "1.50 km".
func FormatThreshold(meters float64) string {
	if meters < 1000 {
		return strconv.FormatFloat(meters, 'f', -1, 64) + " meters"
	}

	return strconv.FormatFloat(meters/1000, 'f', 2, 64) + " km"
}

func singlePopup(item MarkerItem) string {
	var b strings.Builder
	fmt.Fprintf(&b, `<div class="zumap-drop" data-drop-id="%s">`, html.EscapeString(item.DropID))
	fmt.Fprintf(&b, `<span class="zumap-teaser">%s %s</span>`, item.Icon, html.EscapeString(item.Teaser))
	fmt.Fprintf(&b, `<span class="zumap-type">Drop type: %s</span>`, html.EscapeString(strings.ToUpper(string(item.ContentType))))
	writeItemState(&b, item)
	b.WriteString(`</div>`)

	return b.String()
}

func clusterPopup(items []MarkerItem) string {
	var b strings.Builder
	fmt.Fprintf(&b, `<div class="zumap-cluster"><span class="zumap-badge">%d</span><ul class="zumap-cluster-list">`, len(items))
	for _, item := range items {
		fmt.Fprintf(&b, `<li data-drop-id="%s" style="opacity:%s">`,
			html.EscapeString(item.DropID), strconv.FormatFloat(item.Opacity, 'f', -1, 64))
		fmt.Fprintf(&b, `<span class="zumap-teaser">%s %s</span>`, item.Icon, html.EscapeString(item.Teaser))
		writeItemState(&b, item)
		b.WriteString(`</li>`)
	}
	b.WriteString(`</ul></div>`)

	return b.String()
}

func writeItemState(b *strings.Builder, item MarkerItem) {
	if item.DistanceLabel != "" {
		fmt.Fprintf(b, `<span class="zumap-distance">Distance: %s</span>`, item.DistanceLabel)
	}
	if item.InReach {
		fmt.Fprintf(b, `<button class="zumap-collect" data-drop-id="%s">Collect</button>`, html.EscapeString(item.DropID))

		return
	}
	fmt.Fprintf(b, `<span class="zumap-hint">%s</span>`, html.EscapeString(item.Hint))
}
