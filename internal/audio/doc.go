package audio

// Package audio implements the playback.Engine collaborator on top of
// faiface/beep: per-format decoders, the speaker output loop, pause control,
// volume, and resampling of tracks whose sample rate differs from the
// output rate.
