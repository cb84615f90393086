// cmd/naive-baseline/main.go
package main

import (
	"naivebaseline/internal/app"
	"naivebaseline/internal/appshell"
)

func main() {
	appshell.Main(app.RunContext)
}
