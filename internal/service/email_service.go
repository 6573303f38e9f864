package service

import (
	"crypto/tls"
	"fmt"
	"log"
	"mime"
	"net/mail"
	"net/smtp"
	"photo-share-server/internal/config"
	"strings"
	"time"
)

// SendVerificationEmail 发送验证邮件，SMTP 未启用时静默跳过
func (s *EmailService) SendVerificationEmail(toEmail, username, verifyURL string) error {
	body := fmt.Sprintf(`
		<h1>Welcome to Photo Share, %s!</h1>
		<p>Please verify your email address by clicking the link below:</p>
		<p><a href="%s">%s</a></p>
	`, username, verifyURL, verifyURL)
	return s.send(toEmail, "Photo Share - Verify your email", body)
}

// SendPasswordResetEmail 发送重置密码邮件
func (s *EmailService) SendPasswordResetEmail(toEmail, username, resetURL string) error {
	body := fmt.Sprintf(`
		<h1>Password reset</h1>
		<p>Hi %s, click the link below to reset your password:</p>
		<p><a href="%s">%s</a></p>
		<p>If you did not request a reset, you can ignore this email.</p>
	`, username, resetURL, resetURL)
	return s.send(toEmail, "Photo Share - Reset your password", body)
}

// SendPasswordChangedEmail 密码修改成功的通知邮件
func (s *EmailService) SendPasswordChangedEmail(toEmail, username string) error {
	body := fmt.Sprintf(`
		<h1>Password changed</h1>
		<p>Hi %s, your password was changed at %s.</p>
		<p>If this wasn't you, please contact support immediately.</p>
	`, username, time.Now().Format("2006-01-02 15:04:05"))
	return s.send(toEmail, "Photo Share - Your password was changed", body)
}

func (s *EmailService) send(toEmail, subject, body string) error {
	cfg := config.Get()
	if !cfg.SMTP.Enabled || cfg.SMTP.Host == "" {
		return nil
	}

	auth := smtp.PlainAuth("", cfg.SMTP.Username, cfg.SMTP.Password, cfg.SMTP.Host)

	fromHeader, fromAddr, err := parseAddressForHeader(cfg.SMTP.From)
	if err != nil {
		return err
	}
	toHeader, toAddr, err := parseAddressForHeader(toEmail)
	if err != nil {
		return err
	}

	msg, err := buildEmailMessage(fromHeader, toHeader, subject, body)
	if err != nil {
		return err
	}

	addr := fmt.Sprintf("%s:%d", cfg.SMTP.Host, cfg.SMTP.Port)

	// 配置了 SSL（通常是端口 465）时走 tls 直连
	if cfg.SMTP.SSL {
		return sendMailWithSSL(addr, auth, fromAddr, []string{toAddr}, msg)
	}

	// 默认使用 STARTTLS (通常是端口 587 或 25)
	return smtp.SendMail(addr, auth, fromAddr, []string{toAddr}, msg)
}

func sendMailWithSSL(addr string, auth smtp.Auth, from string, to []string, msg []byte) error {
	cfg := config.Get()

	tlsConfig := &tls.Config{
		InsecureSkipVerify: false,
		ServerName:         cfg.SMTP.Host,
	}

	conn, err := tls.Dial("tcp", addr, tlsConfig)
	if err != nil {
		log.Printf("[Email] TLS 连接失败: %v", err)
		return err
	}
	defer conn.Close()

	client, err := smtp.NewClient(conn, cfg.SMTP.Host)
	if err != nil {
		log.Printf("[Email] 创建 SMTP 客户端失败: %v", err)
		return err
	}
	defer client.Close()

	if auth != nil {
		if ok, _ := client.Extension("AUTH"); ok {
			if err = client.Auth(auth); err != nil {
				log.Printf("[Email] SMTP认证失败: %v", err)
				return err
			}
		}
	}

	if err = client.Mail(from); err != nil {
		log.Printf("[Email] MAIL FROM 命令失败: %v", err)
		return err
	}
	for _, rcpt := range to {
		if err = client.Rcpt(rcpt); err != nil {
			// 不记录具体邮箱地址，防止日志泄露敏感信息
			log.Printf("[Email] RCPT TO 命令失败: %v", err)
			return err
		}
	}
	w, err := client.Data()
	if err != nil {
		log.Printf("[Email] DATA 命令失败: %v", err)
		return err
	}
	if _, err = w.Write(msg); err != nil {
		log.Printf("[Email] 写入邮件内容失败: %v", err)
		return err
	}
	if err = w.Close(); err != nil {
		log.Printf("[Email] 关闭 DATA 失败: %v", err)
		return err
	}

	return client.Quit()
}

func parseAddressForHeader(input string) (string, string, error) {
	if err := rejectCRLF(input, "address"); err != nil {
		return "", "", err
	}

	addr, err := mail.ParseAddress(input)
	if err != nil {
		return "", "", err
	}

	headerValue := addr.String()
	if err := rejectCRLF(headerValue, "address"); err != nil {
		return "", "", err
	}

	return headerValue, addr.Address, nil
}

func buildEmailMessage(fromHeader, toHeader, subject, body string) ([]byte, error) {
	if err := rejectCRLF(subject, "subject"); err != nil {
		return nil, err
	}
	// 对 Subject 进行 MIME 编码，防止乱码或被拒收
	encodedSubject := mime.BEncoding.Encode("UTF-8", subject)
	dateStr := time.Now().Format(time.RFC1123Z)

	header := fmt.Sprintf("Date: %s\r\nFrom: %s\r\nTo: %s\r\nSubject: %s\r\nMIME-Version: 1.0\r\nContent-Type: text/html; charset=UTF-8\r\n\r\n",
		dateStr, fromHeader, toHeader, encodedSubject)
	return []byte(header + body), nil
}

func rejectCRLF(value string, field string) error {
	if strings.ContainsAny(value, "\r\n") {
		return fmt.Errorf("invalid %s header: CRLF not allowed", field)
	}
	return nil
}
