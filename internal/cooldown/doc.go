package cooldown

// Package cooldown computes effective ability cooldowns and drives the
// countdown sessions behind the icon overlays. Each (champion, ability) pair
// is either Idle or Running; starting a Running pair restarts it.
