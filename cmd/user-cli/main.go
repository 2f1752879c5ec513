package main

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"rongyi_backend/internal/config"
	"rongyi_backend/internal/database"
	"rongyi_backend/internal/pkg/logger"
	"rongyi_backend/internal/repository"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

// 账号管理工具，直接操作数据库，不经过 HTTP 接口
func main() {
	rootCmd := &cobra.Command{
		Use:           "user-cli",
		Short:         "账号与反馈管理工具",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.AddCommand(addCmd(), listCmd(), pwdCmd(), feedbackCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Printf("❌ %v\n", err)
		os.Exit(1)
	}
}

type repos struct {
	store     *database.Store
	users     *repository.UserRepository
	feedbacks *repository.FeedbackRepository
}

// openRepos 加载配置 (自动读取 .env) 并连接数据库
func openRepos(ctx context.Context) (*repos, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, errors.Wrap(err, "请检查 .env 文件配置是否正确")
	}
	store, err := database.Open(ctx, database.Options{
		DSN: cfg.DatabaseURL,
		Log: logger.New(logger.Options{Level: "warn", Format: "text"}),
	})
	if err != nil {
		return nil, errors.Wrap(err, "无法连接数据库")
	}
	if err := store.Migrate(ctx); err != nil {
		store.Close()
		return nil, errors.Wrap(err, "创建数据库表失败")
	}
	return &repos{
		store:     store,
		users:     repository.NewUserRepository(store, cfg.BcryptCost),
		feedbacks: repository.NewFeedbackRepository(store),
	}, nil
}

func addCmd() *cobra.Command {
	var account, password string
	cmd := &cobra.Command{
		Use:     "add",
		Short:   "添加新用户",
		Example: "user-cli add -u alice -p 123456",
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := openRepos(cmd.Context())
			if err != nil {
				return err
			}
			defer r.store.Close()

			user, err := r.users.Register(cmd.Context(), account, password)
			if errors.Is(err, repository.ErrConflict) {
				return errors.Errorf("用户 '%s' 已存在", account)
			}
			if err != nil {
				return errors.Wrap(err, "创建失败")
			}
			fmt.Printf("✅ 用户 '%s' 创建成功 (ID: %d)\n", user.Account, user.ID)
			return nil
		},
	}
	cmd.Flags().StringVarP(&account, "account", "u", "", "账号 (必须)")
	cmd.Flags().StringVarP(&password, "password", "p", "", "密码 (必须)")
	_ = cmd.MarkFlagRequired("account")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}

func listCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "列出所有用户",
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := openRepos(cmd.Context())
			if err != nil {
				return err
			}
			defer r.store.Close()

			users, err := r.users.List(cmd.Context())
			if err != nil {
				return err
			}

			fmt.Println("\n📋 用户列表:")
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
			fmt.Fprintln(w, "ID\t账号\t创建时间")
			fmt.Fprintln(w, "--\t--\t----")
			for _, u := range users {
				fmt.Fprintf(w, "%d\t%s\t%s\n", u.ID, u.Account, u.CreateTime.Local().Format("2006-01-02 15:04"))
			}
			w.Flush()
			fmt.Println("")
			return nil
		},
	}
}

func pwdCmd() *cobra.Command {
	var account, password string
	cmd := &cobra.Command{
		Use:     "pwd",
		Short:   "重置用户密码",
		Example: "user-cli pwd -u alice -p newpass",
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := openRepos(cmd.Context())
			if err != nil {
				return err
			}
			defer r.store.Close()

			err = r.users.ResetPassword(cmd.Context(), account, password)
			if errors.Is(err, repository.ErrNotFound) {
				return errors.Errorf("未找到用户 '%s'", account)
			}
			if err != nil {
				return errors.Wrap(err, "更新失败")
			}
			fmt.Printf("✅ 用户 '%s' 密码已重置\n", account)
			return nil
		},
	}
	cmd.Flags().StringVarP(&account, "account", "u", "", "账号 (必须)")
	cmd.Flags().StringVarP(&password, "password", "p", "", "新密码 (必须)")
	_ = cmd.MarkFlagRequired("account")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}

func feedbackCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "feedback",
		Short: "反馈管理",
	}

	var userID uint
	clearCmd := &cobra.Command{
		Use:     "clear",
		Short:   "清空某个用户的全部反馈",
		Example: "user-cli feedback clear -i 3",
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := openRepos(cmd.Context())
			if err != nil {
				return err
			}
			defer r.store.Close()

			n, err := r.feedbacks.ClearByUser(cmd.Context(), userID)
			if err != nil {
				return errors.Wrap(err, "删除失败")
			}
			fmt.Printf("🗑️  已删除用户 %d 的 %d 条反馈\n", userID, n)
			return nil
		},
	}
	clearCmd.Flags().UintVarP(&userID, "user-id", "i", 0, "用户 ID (必须)")
	_ = clearCmd.MarkFlagRequired("user-id")

	cmd.AddCommand(clearCmd)
	return cmd
}
