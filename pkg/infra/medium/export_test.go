package medium

const MaxFeedSizeForTest = maxFeedSize
