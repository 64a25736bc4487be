package provider

import (
	"fmt"

	"github.com/dmitrymomot/uabench/pkg/harmonize"
)

// Evaluated column names, as stored in result_evaluations.
const (
	ColumnBrowserName    = "browser_name"
	ColumnBrowserVersion = "browser_version"
	ColumnEngineName     = "engine_name"
	ColumnEngineVersion  = "engine_version"
	ColumnOSName         = "os_name"
	ColumnOSVersion      = "os_version"
	ColumnDeviceModel    = "device_model"
	ColumnDeviceBrand    = "device_brand"
	ColumnDeviceType     = "device_type"
	ColumnBotName        = "bot_name"
	ColumnBotType        = "bot_type"
)

// Column binds a result column to the field tag that harmonizes it.
type Column struct {
	Name  string
	Field harmonize.Field
}

// Columns lists every evaluated column in report order.
var Columns = []Column{
	{ColumnBrowserName, harmonize.BrowserName},
	{ColumnBrowserVersion, harmonize.Version},
	{ColumnEngineName, harmonize.EngineName},
	{ColumnEngineVersion, harmonize.Version},
	{ColumnOSName, harmonize.OSName},
	{ColumnOSVersion, harmonize.Version},
	{ColumnDeviceModel, harmonize.DeviceModel},
	{ColumnDeviceBrand, harmonize.DeviceBrand},
	{ColumnDeviceType, harmonize.DeviceType},
	{ColumnBotName, harmonize.BotName},
	{ColumnBotType, harmonize.BotType},
}

// ColumnByName looks up an evaluated column.
func ColumnByName(name string) (Column, error) {
	for _, c := range Columns {
		if c.Name == name {
			return c, nil
		}
	}
	return Column{}, fmt.Errorf("%w: %q", ErrUnknownColumn, name)
}
