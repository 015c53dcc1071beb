package charts

import (
	"encoding/json"
	"fmt"

	"github.com/M1ts0sGitHub/Earthquakes/internal/colors"
	"github.com/M1ts0sGitHub/Earthquakes/internal/models"
)

// Marker scaling: radius in pixels grows linearly with magnitude so small
// events stay visible and large ones dominate the view.
const (
	markerRadiusScale  = 2.5
	markerRadiusOffset = 4.0
	markerFillOpacity  = 0.7
)

// mapMarker is the wire shape handed to the Leaflet script for one event.
type mapMarker struct {
	Lat    float64 `json:"lat"`
	Lon    float64 `json:"lon"`
	Radius float64 `json:"radius"`
	Color  string  `json:"color"`
	Popup  string  `json:"popup"`
}

// MapSnippet builds the interactive Leaflet map fragment with one circle
// marker per record. Marker color encodes recency relative to the working
// set's own time bounds, so a narrower filter re-stretches the gradient.
func (cg *ChartGenerator) MapSnippet(records []models.EarthquakeRecord, centerLat, centerLon float64, zoom int) (ChartSnippet, error) {
	id := "map-earthquakes"

	oldest, newest, _ := models.TimeBounds(records)

	markers := make([]mapMarker, 0, len(records))
	for _, r := range records {
		color := colors.Hex(colors.RecencyColor(r.Timestamp, oldest, newest))
		popup := fmt.Sprintf("<b>Date:</b> %s<br><b>Magnitude:</b> %.1f<br><b>Depth:</b> %.1f km",
			r.Timestamp.Format("2006-01-02 15:04"), r.Magnitude, r.Depth)

		markers = append(markers, mapMarker{
			Lat:    r.Latitude,
			Lon:    r.Longitude,
			Radius: r.Magnitude*markerRadiusScale + markerRadiusOffset,
			Color:  color,
			Popup:  popup,
		})
	}

	markersJSON, err := json.Marshal(markers)
	if err != nil {
		return ChartSnippet{}, err
	}

	div := fmt.Sprintf("<div id=\"%s\" style=\"width:100%%;height:600px;\"></div>", id)
	script := fmt.Sprintf(`<script>(function(){var el=document.getElementById('%s');if(!el)return;var map=L.map('%s').setView([%f,%f],%d);L.tileLayer('https://tile.openstreetmap.org/{z}/{x}/{y}.png',{attribution:'&copy; OpenStreetMap contributors'}).addTo(map);var markers=%s;markers.forEach(function(m){L.circleMarker([m.lat,m.lon],{radius:m.radius,color:m.color,fillColor:m.color,fillOpacity:%g,weight:1}).bindPopup(m.popup).addTo(map);});})();</script>`,
		id, id, centerLat, centerLon, zoom, string(markersJSON), markerFillOpacity)

	completeHTML := fmt.Sprintf(`<link rel="stylesheet" href="https://unpkg.com/leaflet@1.9.4/dist/leaflet.css"/>
<script src="https://unpkg.com/leaflet@1.9.4/dist/leaflet.js"></script>
<div class="map-container">
	%s
</div>
%s`, div, script)

	return ChartSnippet{ID: id, Title: "Earthquake Map", Div: div, Script: script, HTML: completeHTML}, nil
}
