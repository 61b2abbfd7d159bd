package pkg

import (
	"crypto/tls"
	"fmt"

	"gopkg.in/gomail.v2"
)

type SMTPConfig struct {
	Host     string
	Port     int
	Username string // 发件人邮箱
	Password string // 授权码/密码
	From     string // 显示的发件人，可与 Username 相同
}

func SendEmail(cfg SMTPConfig, to, subject, htmlBody string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", cfg.From)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", htmlBody)

	d := gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password)
	d.TLSConfig = &tls.Config{InsecureSkipVerify: false}
	return d.DialAndSend(m)
}

// RegisterCodeHTML 注册验证码邮件正文
func RegisterCodeHTML(code string) string {
	return fmt.Sprintf(
		`<p>您好，</p><p>您的注册验证码是 <b style="font-size:18px;">%s</b>，5分钟内有效。</p>`,
		code,
	)
}

// InviteHTML 乐队邀请邮件正文
func InviteHTML(groupName, memberName, code string) string {
	return fmt.Sprintf(
		`<p>您好 %s，</p><p>乐队 <b>%s</b> 邀请您加入。登录后使用邀请码 <b style="font-size:18px;">%s</b> 确认，即可关联您的账号并开始标记空闲时间。</p><p>邀请码72小时内有效。</p>`,
		memberName, groupName, code,
	)
}
