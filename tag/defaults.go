package tag

import (
	"os"
)

// Defaults returns the tags added to every metric the agent publishes.
// Tags whose source is unset are left out.
func Defaults(flavor string) map[string]string {
	tags := map[string]string{}
	if flavor != "" {
		tags["flavor"] = flavor
	}
	for key, env := range map[string]string{
		"stack": "NETFLIX_STACK",
		"node":  "EC2_INSTANCE_ID",
		"asg":   "NETFLIX_AUTO_SCALE_GROUP",
	} {
		if value := os.Getenv(env); value != "" {
			tags[key] = value
		}
	}
	return tags
}
