// Command chartspec builds, formats and checks ECharts option documents.
package main

import "github.com/derickschaefer/chartspec/cmd"

func main() {
	cmd.Execute()
}
