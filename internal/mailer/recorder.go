package mailer

import "sync"

// Sent 一封已记录的邮件
type Sent struct {
	To      string
	Subject string
	HTML    string
}

// Recorder 记录发送内容的 Mailer，供测试使用。Err 非空时发送失败且不记录
type Recorder struct {
	mu   sync.Mutex
	sent []Sent
	Err  error
}

func (r *Recorder) SendHTML(to, subject, html string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return r.Err
	}
	r.sent = append(r.sent, Sent{To: to, Subject: subject, HTML: html})
	return nil
}

// Messages 返回已发送邮件的副本
func (r *Recorder) Messages() []Sent {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Sent(nil), r.sent...)
}

// Last 最近一封邮件，没有时返回 false
func (r *Recorder) Last() (Sent, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.sent) == 0 {
		return Sent{}, false
	}
	return r.sent[len(r.sent)-1], true
}
