package main

import "github.com/soccerlab/rater-api/cmd"

// @title           Clip Rater API
// @version         1.0.0
// @description     A data collection API for human ratings of soccer video clips
// @contact.name    API Support
// @contact.url     https://github.com/soccerlab/rater-api
// @license.name    MIT
// @license.url     https://opensource.org/licenses/MIT
// @host            localhost:8080
// @BasePath        /
// @schemes         http https
func main() {
	cmd.Execute()
}
