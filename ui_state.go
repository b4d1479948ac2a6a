package main

type uiState struct {
	mode      mode
	notice    notice
	noticeSeq int
}
