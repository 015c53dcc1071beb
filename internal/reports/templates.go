package reports

// reportTemplate is the single-page layout: sidebar with filters and
// advisories, main column with map, statistics, charts and the event table.
const reportTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>Recent Earthquakes in Greece</title>
<style>
  body { font-family: Arial, sans-serif; margin: 0; background: #f5f5f5; color: #333; }
  .layout { display: flex; min-height: 100vh; }
  .sidebar { width: 260px; background: #fff; padding: 20px; box-shadow: 2px 0 6px rgba(0,0,0,0.08); }
  .sidebar h3 { margin-top: 0; }
  .sidebar label { display: block; margin: 12px 0 4px; font-size: 13px; color: #555; }
  .sidebar input { width: 100%; padding: 6px; box-sizing: border-box; }
  .sidebar button { margin-top: 16px; width: 100%; padding: 8px; background: #007bff; color: #fff; border: none; border-radius: 4px; cursor: pointer; }
  .sidebar button:hover { background: #0063cc; }
  .advisories { margin-top: 28px; font-size: 13px; }
  .advisories li { margin-bottom: 8px; }
  .content { flex: 1; padding: 24px; max-width: 1000px; }
  h1 { margin: 0 0 4px; }
  .meta { color: #777; font-size: 13px; margin-bottom: 16px; }
  .stale { background: #fff3cd; border-left: 4px solid #ffc107; padding: 10px 14px; margin: 12px 0; }
  .stats { display: flex; gap: 16px; margin: 20px 0; }
  .stat-card { flex: 1; background: #fff; border-radius: 8px; padding: 16px; text-align: center; box-shadow: 0 1px 4px rgba(0,0,0,0.08); }
  .stat-card .value { font-size: 28px; font-weight: bold; }
  .stat-card .label { font-size: 13px; color: #777; }
  .panel { background: #fff; border-radius: 8px; padding: 16px; margin: 20px 0; box-shadow: 0 1px 4px rgba(0,0,0,0.08); }
  table { width: 100%; border-collapse: collapse; font-size: 14px; }
  th, td { padding: 6px 10px; border-bottom: 1px solid #eee; text-align: right; }
  th:first-child, td:first-child { text-align: left; }
  .swatch { display: inline-block; width: 10px; height: 10px; border-radius: 50%; margin-right: 6px; }
  .csv-link { display: inline-block; margin: 8px 0; }
  .about { color: #555; font-size: 14px; }
</style>
</head>
<body>
<div class="layout">
  <div class="sidebar">
    <h3>Filters</h3>
    <form method="get" action="/">
      <label for="from">From date</label>
      <input type="date" id="from" name="from" value="{{.Filter.From}}">
      <label for="to">To date</label>
      <input type="date" id="to" name="to" value="{{.Filter.To}}">
      <label for="min_mag">Min magnitude</label>
      <input type="number" step="0.1" id="min_mag" name="min_mag" value="{{.Filter.MinMagnitude}}">
      <label for="max_mag">Max magnitude</label>
      <input type="number" step="0.1" id="max_mag" name="max_mag" value="{{.Filter.MaxMagnitude}}">
      <button type="submit">Apply</button>
    </form>
    {{if .Advisories}}
    <div class="advisories">
      <h3>Advisories</h3>
      <ul>
        {{range .Advisories}}
        <li><a href="{{.Link}}">{{.Title}}</a>{{if .Published}} <span>({{.Published}})</span>{{end}}</li>
        {{end}}
      </ul>
    </div>
    {{end}}
  </div>
  <div class="content">
    <h1>&#127757; Recent Earthquakes in Greece</h1>
    <div class="meta">
      Data source: National and Kapodistrian University of Athens Seismology Laboratory
      {{if .FetchedAt}} &middot; snapshot taken {{.FetchedAt}}{{end}}
      &middot; v{{.Version}}
    </div>
    {{if .StaleNotice}}<div class="stale">{{.StaleNotice}}</div>{{end}}

    <div class="panel">
      {{.MapHTML}}
    </div>

    <div class="stats">
      <div class="stat-card"><div class="value">{{.Summary.Count}}</div><div class="label">Total Earthquakes</div></div>
      <div class="stat-card"><div class="value">{{printf "%.2f" .Summary.MeanMagnitude}}</div><div class="label">Average Magnitude</div></div>
      <div class="stat-card"><div class="value">{{printf "%.2f" .Summary.MaxMagnitude}}</div><div class="label">Strongest Earthquake</div></div>
    </div>

    {{if .HistogramHTML}}<div class="panel">{{.HistogramHTML}}</div>{{end}}
    {{if .DailyHTML}}<div class="panel">{{.DailyHTML}}</div>{{end}}
    {{if .TimelineImage}}<div class="panel"><img src="{{.TimelineImage}}" alt="Magnitude timeline" style="max-width:100%"></div>{{end}}

    <div class="panel">
      <h2>Earthquake Data</h2>
      <a class="csv-link" href="{{.CSVLink}}">Download CSV</a>
      <table>
        <thead>
          <tr><th>Datetime</th><th>Lat</th><th>Long</th><th>Mag</th><th>Dep (km)</th></tr>
        </thead>
        <tbody>
          {{range .Rows}}
          <tr>
            <td>{{if .Color}}<span class="swatch" style="background:{{.Color}}"></span>{{end}}{{.Datetime}}</td>
            <td>{{.Latitude}}</td>
            <td>{{.Longitude}}</td>
            <td>{{.Magnitude}}</td>
            <td>{{.Depth}}</td>
          </tr>
          {{end}}
        </tbody>
      </table>
    </div>

    <div class="panel about">
      {{.AboutHTML}}
      <p>Generated at {{.GeneratedAt}}</p>
    </div>
  </div>
</div>
</body>
</html>
`
