package views

import "github.com/pterm/pterm"

type SystemInfoItem struct {
	ConfigPath      string
	Backend         string
	Location        string
	LocationExists  bool // only meaningful for file and sqlite backends
	DisplayCurrency string
	Minimum         string
	AppDataDir      string
	LogFile         string
}

func RenderSystemInfo(data SystemInfoItem) error {
	status := pterm.Green("Found")
	if !data.LocationExists {
		status = pterm.Red("Not Found (Will be created)")
	}
	if data.Backend == "redis" {
		status = pterm.Gray("Remote")
	}

	logFile := data.LogFile
	if logFile == "" {
		logFile = "(disabled)"
	}

	tableData := pterm.TableData{
		{"Configuration File", data.ConfigPath},
		{"Storage Backend", data.Backend},
		{"Storage Location", data.Location},
		{"Storage Status", status},
		{"Display Currency", data.DisplayCurrency},
		{"Minimum Withdrawal", data.Minimum},
		{"AppData Directory", data.AppDataDir},
		{"Log File", logFile},
	}

	return pterm.DefaultTable.WithData(tableData).Render()
}
