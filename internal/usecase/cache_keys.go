package usecase

const (
	profilesPrefix = "profiles:"
	postsPrefix    = "posts:"
	pillarsPrefix  = "pillars:"
)

func profileListKey() string {
	return profilesPrefix + "list"
}

func profileDetailKey(profileID string) string {
	return profilesPrefix + "detail:" + profileID
}

func postListKey(profileID string) string {
	return postsPrefix + "list:" + profileID
}

func pillarListKey(profileID string) string {
	return pillarsPrefix + "list:" + profileID
}
