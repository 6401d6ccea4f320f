// Package config loads wmsui configuration.
//
// Values come, in increasing precedence, from struct tag defaults, an
// optional wmsui.json file, a .env file and WMSUI_* environment variables:
//
//	WMSUI_SERVER_ADDR=:8080
//	WMSUI_API_BASE_URL=http://wms.internal:5000
//	WMSUI_TOAST_HOLD=4s
package config
