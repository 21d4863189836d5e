package brandprofile

import "slices"

const RoleOther = "Other"

var RoleOptions = []string{
	"SaaS Founder",
	"Agency Owner",
	"Consultant",
	"Creator",
	"Freelancer",
	"Investor",
	"Operator",
	"Side Project Builder",
	"Community Builder",
	"Speaker",
	RoleOther,
}

var GoalOptions = []string{
	"Build audience",
	"Get clients/inbound",
	"Attract talent",
	"Build investor visibility",
	"Authority in industry",
	"Document journey",
}

type FrequencyOption struct {
	Value       int
	Label       string
	Description string
}

var FrequencyOptions = []FrequencyOption{
	{Value: 3, Label: "3/month", Description: "Light presence"},
	{Value: 8, Label: "8/month", Description: "2x per week"},
	{Value: 12, Label: "12/month", Description: "3x per week"},
	{Value: 20, Label: "20/month", Description: "5x per week"},
	{Value: 30, Label: "30/month", Description: "Daily"},
}

var PillarOptions = []string{
	"Founder journey",
	"Behind-the-scenes",
	"Expertise / educational",
	"Opinions / rants",
	"Industry takes",
	"Wins & losses",
	"Team / culture",
	"Product & vision",
}

const (
	MaxPillars         = 5
	MaxAdmiredCreators = 5
	MaxPastPosts       = 5
)

func IsRoleOption(name string) bool {
	return slices.Contains(RoleOptions, name)
}

func IsGoalOption(goal string) bool {
	return slices.Contains(GoalOptions, goal)
}

func IsPresetPillar(name string) bool {
	return slices.Contains(PillarOptions, name)
}

func IsFrequencyOption(value int) bool {
	return slices.ContainsFunc(FrequencyOptions, func(opt FrequencyOption) bool { return opt.Value == value })
}
