package ddragon

// Package ddragon implements the read-only client for the Data Dragon static
// data CDN: the valid champion roster, per-champion ability cooldown tables,
// and ability icons. Requests carry an explicit timeout and a bounded retry;
// champion documents and icons are memoised in LRU caches for the session.
